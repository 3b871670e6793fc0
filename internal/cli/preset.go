package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stairforge/pkg/preset"
	"github.com/matzehuels/stairforge/pkg/stair"
)

// presetCommand creates the preset management command.
func (c *CLI) presetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage stored parameter presets",
	}

	cmd.AddCommand(c.presetListCommand())
	cmd.AddCommand(c.presetShowCommand())
	cmd.AddCommand(c.presetSaveCommand())
	cmd.AddCommand(c.presetDeleteCommand())

	return cmd
}

// presetStore opens the on-disk preset store.
func (c *CLI) presetStore() (preset.Store, error) {
	return preset.NewFileStore("")
}

// presetListCommand creates the "preset list" subcommand.
func (c *CLI) presetListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.presetStore()
			if err != nil {
				return err
			}
			defer store.Close()

			presets, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(presets) == 0 {
				printInfo("No presets stored")
				printNextStep("Save one", "stairforge preset save <name> [flags]")
				return nil
			}

			for _, p := range presets {
				fmt.Println(StyleHighlight.Render(p.Name))
				printDetail("%s · updated %s", p.Params.Describe(), p.UpdatedAt.Local().Format(time.DateTime))
			}
			return nil
		},
	}
}

// presetShowCommand creates the "preset show" subcommand.
func (c *CLI) presetShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a preset's parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.presetStore()
			if err != nil {
				return err
			}
			defer store.Close()

			p, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render(p.Name))
			printKeyValue("steps", fmt.Sprintf("%d", p.Params.StepCount))
			printKeyValue("height", fmt.Sprintf("%.2f", p.Params.StepHeight))
			printKeyValue("width", fmt.Sprintf("%.2f", p.Params.StepWidth))
			printKeyValue("depth", fmt.Sprintf("%.2f", p.Params.StepDepth))
			printKeyValue("thickness", fmt.Sprintf("%.2f", p.Params.StepThickness))
			printKeyValue("railings", onOff(p.Params.Railings))
			printKeyValue("curved", onOff(p.Params.Curved))
			if p.Params.Curved {
				printKeyValue("radius", fmt.Sprintf("%.1f", p.Params.CurveRadius))
			} else {
				printKeyValue("direction", string(p.Params.Direction))
			}
			printDetail("created %s · updated %s",
				p.CreatedAt.Local().Format(time.DateTime),
				p.UpdatedAt.Local().Format(time.DateTime))
			return nil
		},
	}
}

// presetSaveCommand creates the "preset save" subcommand. It accepts the
// same parameter flags as generate and upserts under the given name.
func (c *CLI) presetSaveCommand() *cobra.Command {
	flags := newParamFlags()

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save parameters as a preset",
		Example: `  stairforge preset save front-porch -n 6 --railings
  stairforge preset save spiral --curved --radius 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := stair.Default()
			if err := flags.apply(cmd, &params); err != nil {
				return err
			}

			store, err := c.presetStore()
			if err != nil {
				return err
			}
			defer store.Close()

			p, err := store.Put(cmd.Context(), preset.Preset{Name: args[0], Params: params})
			if err != nil {
				return err
			}

			printSuccess("Saved preset %s", StyleHighlight.Render(p.Name))
			printDetail("%s", p.Params.Describe())
			printNextStep("Use it", fmt.Sprintf("stairforge generate --preset %s", p.Name))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// presetDeleteCommand creates the "preset delete" subcommand.
func (c *CLI) presetDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.presetStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted preset %s", args[0])
			return nil
		},
	}
}
