package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sheetlingo/internal/prompt"
)

// CreatePresetsCommand creates the subcommand for managing prompt
// configurations.
func CreatePresetsCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage prompt configuration presets",
		Long: `Presets are named prompt configurations stored under the prompts
directory. The active configuration drives every translation call;
"presets use" replaces it with a copy of the named preset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPresets(flags.PromptsDir)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List available presets",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return listPresets(flags.PromptsDir)
			},
		},
		&cobra.Command{
			Use:   "show <name>",
			Short: "Show a preset's prompt sections",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return showPreset(flags.PromptsDir, args[0])
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write the built-in presets to the prompts directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return initPresets(flags.PromptsDir)
			},
		},
		&cobra.Command{
			Use:   "use <name>",
			Short: "Make a preset the active configuration",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return usePreset(flags.PromptsDir, args[0])
			},
		},
		&cobra.Command{
			Use:   "delete <name>",
			Short: "Delete a preset",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return deletePreset(flags.PromptsDir, args[0])
			},
		},
	)

	return cmd
}

func listPresets(dir string) error {
	store := prompt.NewStore(dir)

	active, err := store.Active()
	if err != nil {
		return err
	}
	fmt.Printf("Active configuration: %s\n", active.Name)

	names, err := store.Presets()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("\nNo presets saved. Run \"sheetlingo presets init\" to create the built-in ones.")
		return nil
	}

	fmt.Println("\nAvailable presets:")
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

func showPreset(dir, name string) error {
	store := prompt.NewStore(dir)
	cfg, err := store.Preset(name)
	if err != nil {
		return err
	}

	fmt.Printf("Preset: %s\n", cfg.Name)
	if cfg.Description != "" {
		fmt.Printf("Description: %s\n", cfg.Description)
	}

	printSpec := func(title string, spec prompt.Spec) {
		fmt.Printf("\n--- %s ---\n", title)
		fmt.Printf("Identity:\n%s\n", spec.Identity)
		fmt.Printf("\nInstructions:\n%s\n", spec.Instructions)
		if spec.CriticalRules != "" {
			fmt.Printf("\nCritical rules:\n%s\n", spec.CriticalRules)
		}
		if spec.Examples != "" {
			fmt.Printf("\nExamples:\n%s\n", spec.Examples)
		}
		if spec.AdditionalNotes != "" {
			fmt.Printf("\nAdditional notes:\n%s\n", spec.AdditionalNotes)
		}
	}
	printSpec("Value Prompt", cfg.Value)
	printSpec("Formula Prompt", cfg.Formula)
	return nil
}

func initPresets(dir string) error {
	store := prompt.NewStore(dir)
	written, err := store.Init()
	if err != nil {
		return err
	}
	if len(written) == 0 {
		fmt.Println("All built-in presets already exist.")
		return nil
	}
	for _, name := range written {
		fmt.Printf("Created preset: %s\n", name)
	}
	return nil
}

func usePreset(dir, name string) error {
	store := prompt.NewStore(dir)
	cfg, err := store.Preset(name)
	if err != nil {
		return err
	}
	if err := store.SaveActive(cfg); err != nil {
		return err
	}
	fmt.Printf("Active configuration is now %q.\n", cfg.Name)
	return nil
}

func deletePreset(dir, name string) error {
	store := prompt.NewStore(dir)
	if err := store.DeletePreset(name); err != nil {
		return err
	}
	fmt.Printf("Deleted preset %q.\n", name)
	return nil
}
