package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/piwi3910/tentlayout/internal/applog"
	"github.com/piwi3910/tentlayout/internal/engine"
	"github.com/piwi3910/tentlayout/internal/model"
	"github.com/piwi3910/tentlayout/internal/project"
)

var (
	jsonOutput bool
	debugMode  bool

	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	keyColor     = color.New(color.FgYellow)
)

var rootCmd = &cobra.Command{
	Use:   "tentlayout",
	Short: "tentlayout computes brace and rail floor-plan layouts for event tents",
	Long: `tentlayout is a command-line client for the tent floor-plan optimizer.

It takes a tent's dimensions, a brace/rail inventory, and placement
constraints, and returns a ranked, named set of candidate layouts.`,
	Version:           "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applog.Init(debugMode)
	},
}

func printError(msg string) {
	errorColor.Fprintln(os.Stderr, "✗ "+msg)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

var (
	flagLength       float64
	flagWidth        float64
	flagMinSetback   float64
	flagMaxSetback   float64
	flagMaxGap       float64
	flagInventory    string
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Compute candidate layouts for a tent",
	Long:  `Runs the column/rail layout engine for a tent of the given dimensions and prints the named scenarios it finds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagLength <= 0 || flagWidth <= 0 {
			return fmt.Errorf("--length and --width must be positive")
		}

		req := model.CalculationRequest{
			Tent: model.Tent{Length: flagLength, Width: flagWidth},
		}

		// Seed constraints from the saved AppConfig, then let explicit
		// flags override individual fields.
		appCfg, err := project.LoadAppConfig(project.DefaultConfigPath())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cons := model.DefaultConstraints()
		appCfg.ApplyToConstraints(&cons)
		if cmd.Flags().Changed("min-setback") {
			cons.MinSetback = flagMinSetback
		}
		if cmd.Flags().Changed("max-setback") {
			cons.MaxSetback = flagMaxSetback
		}
		if cmd.Flags().Changed("max-gap") {
			cons.MaxColumnGap = flagMaxGap
		}
		req.Constraints = &cons

		if flagInventory != "" {
			data, err := os.ReadFile(flagInventory)
			if err != nil {
				return fmt.Errorf("read inventory file: %w", err)
			}
			var inv model.Inventory
			if err := json.Unmarshal(data, &inv); err != nil {
				return fmt.Errorf("parse inventory file: %w", err)
			}
			req.Inventory = &inv
		} else {
			inv, path, err := project.LoadOrCreateInventory()
			if err == nil {
				req.Inventory = &inv
			} else {
				infoColor.Fprintf(os.Stderr, "using built-in inventory (could not load %s: %v)\n", path, err)
			}
		}

		resp, err := engine.Calculate(req)
		if err != nil {
			printError(err.Error())
			return err
		}

		if jsonOutput {
			return printJSON(resp)
		}

		printScenarioTable(resp)
		successColor.Printf("✓ Found %d scenario(s)\n", len(resp.Scenarios))
		return nil
	},
}

func printScenarioTable(resp model.CalculationResponse) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Scenario", "Columns", "Setback", "Open Setback", "Total Gap", "Brace Types")

	for _, s := range resp.Scenarios {
		table.Append(
			s.Name,
			strconv.Itoa(len(s.Columns)),
			fmt.Sprintf("%.3fm", s.Setback),
			fmt.Sprintf("%.3fm", s.OpenEndSetbackStart),
			fmt.Sprintf("%.3fm²", s.TotalGap),
			strconv.Itoa(s.DistinctBraceTypes),
		)
	}

	table.Render()
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if jsonOutput {
			return printJSON(cfg)
		}
		keyColor.Print("Default Min Setback: ")
		fmt.Printf("%.3fm\n", cfg.DefaultMinSetback)
		keyColor.Print("Default Max Setback: ")
		fmt.Printf("%.3fm\n", cfg.DefaultMaxSetback)
		keyColor.Print("Default Max Column Gap: ")
		fmt.Printf("%.3fm\n", cfg.DefaultMaxColumnGap)
		keyColor.Print("Alternate Min Setback: ")
		fmt.Printf("%.3fm\n", cfg.AltMinSetback)
		keyColor.Print("Inventory Path: ")
		fmt.Println(cfg.DefaultInventoryPath)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := project.DefaultConfigPath()
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s", path)
		}
		if err := project.SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		successColor.Printf("✓ Created default config at: %s\n", path)
		return nil
	},
}

var configExportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export configuration to a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := project.ExportAllData(args[0], cfg); err != nil {
			return fmt.Errorf("export config: %w", err)
		}
		successColor.Printf("✓ Exported config to: %s\n", args[0])
		return nil
	},
}

var configImportCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import configuration from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backup, err := project.ImportAllData(args[0])
		if err != nil {
			return fmt.Errorf("import config: %w", err)
		}
		if err := project.SaveAppConfig(project.DefaultConfigPath(), backup.Config); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		successColor.Printf("✓ Imported config (backup version %s, created %s)\n", backup.Version, backup.CreatedAt)
		return nil
	},
}

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Manage brace and rail inventory",
}

var inventoryBraceCmd = &cobra.Command{
	Use:   "brace <id>",
	Short: "Look up a brace by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, _, err := project.LoadOrCreateInventory()
		if err != nil {
			return fmt.Errorf("load inventory: %w", err)
		}
		brace := inv.FindBraceByID(args[0])
		if brace == nil {
			return fmt.Errorf("no brace with ID %q", args[0])
		}
		if jsonOutput {
			return printJSON(brace)
		}
		keyColor.Print("ID: ")
		fmt.Println(brace.ID)
		keyColor.Print("Length: ")
		fmt.Printf("%.2fm\n", brace.Length)
		keyColor.Print("Width: ")
		fmt.Printf("%.2fm\n", brace.Width)
		keyColor.Print("Quantity: ")
		fmt.Println(brace.Quantity)
		return nil
	},
}

var inventoryRailCmd = &cobra.Command{
	Use:   "rail <id>",
	Short: "Look up a rail by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, _, err := project.LoadOrCreateInventory()
		if err != nil {
			return fmt.Errorf("load inventory: %w", err)
		}
		rail := inv.FindRailByID(args[0])
		if rail == nil {
			return fmt.Errorf("no rail with ID %q", args[0])
		}
		if jsonOutput {
			return printJSON(rail)
		}
		keyColor.Print("ID: ")
		fmt.Println(rail.ID)
		keyColor.Print("Length: ")
		fmt.Printf("%.2fm\n", rail.Length)
		keyColor.Print("Quantity: ")
		fmt.Println(rail.Quantity)
		return nil
	},
}

var inventoryExportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export inventory to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, _, err := project.LoadOrCreateInventory()
		if err != nil {
			return fmt.Errorf("load inventory: %w", err)
		}
		if err := project.ExportInventory(args[0], inv); err != nil {
			return fmt.Errorf("export inventory: %w", err)
		}
		successColor.Printf("✓ Exported inventory to: %s\n", args[0])
		return nil
	},
}

var inventoryImportCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import and merge inventory from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		existing, path, err := project.LoadOrCreateInventory()
		if err != nil {
			return fmt.Errorf("load inventory: %w", err)
		}
		merged, err := project.ImportInventory(args[0], existing)
		if err != nil {
			return fmt.Errorf("import inventory: %w", err)
		}
		if err := project.SaveInventory(path, merged); err != nil {
			return fmt.Errorf("save inventory: %w", err)
		}
		successColor.Printf("✓ Imported inventory into: %s\n", path)
		return nil
	},
}

var inventoryShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, _, err := project.LoadOrCreateInventory()
		if err != nil {
			return fmt.Errorf("load inventory: %w", err)
		}
		if jsonOutput {
			return printJSON(inv)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Brace ID", "Length", "Width", "Quantity")
		for _, b := range inv.Braces {
			table.Append(b.ID, fmt.Sprintf("%.2fm", b.Length), fmt.Sprintf("%.2fm", b.Width), strconv.Itoa(b.Quantity))
		}
		table.Render()

		railTable := tablewriter.NewWriter(os.Stdout)
		railTable.Header("Rail ID", "Length", "Quantity")
		for _, r := range inv.Rails {
			railTable.Append(r.ID, fmt.Sprintf("%.2fm", r.Length), strconv.Itoa(r.Quantity))
		}
		railTable.Render()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output raw JSON instead of tables")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	calculateCmd.Flags().Float64Var(&flagLength, "length", 0, "tent length in meters")
	calculateCmd.Flags().Float64Var(&flagWidth, "width", 0, "tent width in meters")
	calculateCmd.Flags().Float64Var(&flagMinSetback, "min-setback", model.DefaultMinSetback, "minimum setback in meters")
	calculateCmd.Flags().Float64Var(&flagMaxSetback, "max-setback", model.DefaultMaxSetback, "maximum setback in meters")
	calculateCmd.Flags().Float64Var(&flagMaxGap, "max-gap", model.DefaultMaxColumnGap, "maximum per-column gap in meters")
	calculateCmd.Flags().StringVar(&flagInventory, "inventory", "", "path to a JSON inventory file (defaults to the saved inventory)")

	configCmd.AddCommand(configShowCmd, configInitCmd, configExportCmd, configImportCmd)
	inventoryCmd.AddCommand(inventoryShowCmd, inventoryBraceCmd, inventoryRailCmd, inventoryExportCmd, inventoryImportCmd)
	rootCmd.AddCommand(calculateCmd, configCmd, inventoryCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
