// Package draw defines the renderer contract: a [Frame] of draw
// instructions produced by the layout generators and consumed by the
// sinks.
//
// An [Instruction] is a discriminated union over three primitives:
//
//   - [Triangle]: three points and a flat fill.
//   - [Sector]: a rotated, z-ordered instance of a shared [SectorMesh].
//     Meshes are owned by the frame and referenced by [MeshID], so every
//     sector of a ring shares one immutable mesh.
//   - [TexturedRect]: an axis-aligned rectangle filled with an RGBA8
//     [Texture].
//
// All positions use the centered, y-up space of package geom. Fill
// channels are stored exactly as the generator produced them; sinks paint
// them as-is.
//
// Frames serialize to JSON (and carry bson tags for document stores) so
// a computed layout can be cached, saved with `prismview layout` and
// re-rendered later with `prismview visualize`.
package draw
