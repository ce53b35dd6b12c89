package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/prismview/pkg/scene"
)

// scenesCommand lists the available scenes.
func (c *CLI) scenesCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "scenes",
		Short:       "List available scenes",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(renderTable([]string{"Scene", "Title", "Stages", "Colors", "Description"}, sceneRows()))
			printNewline()
			printNextStep("Render one", appName+" render "+scene.HueWheel.String())
			return nil
		},
	}
}

func sceneRows() [][]string {
	var rows [][]string
	for _, k := range scene.All() {
		h := k.Hierarchy()
		rows = append(rows, []string{
			k.String(),
			k.Title(),
			fmt.Sprint(len(h)),
			fmt.Sprint(h.ColorCount()),
			k.Description(),
		})
	}
	return rows
}
