package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/tubepile/internal/cli/formatter"
	"github.com/alexanderramin/tubepile/internal/contract"
	"github.com/alexanderramin/tubepile/internal/domain"
	"github.com/alexanderramin/tubepile/internal/importer"
	"github.com/spf13/cobra"
)

func newGroupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "group",
		Aliases: []string{"groups", "g"},
		Short:   "Manage pile groups",
	}

	cmd.AddCommand(
		newGroupAddCmd(app),
		newGroupListCmd(app),
		newGroupShowCmd(app),
		newGroupUpdateCmd(app),
		newGroupRemoveCmd(app),
		newGroupTotalsCmd(app),
		newGroupImportCmd(app),
		newGroupExportCmd(app),
	)

	return cmd
}

func newGroupAddCmd(app *App) *cobra.Command {
	var flags pileFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a pile group",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd.Flags(), "name", "od", "wt", "length"); err != nil {
				return err
			}
			g := flags.group()
			if err := g.Validate(); err != nil {
				return err
			}
			if err := app.Groups.Add(cmd.Context(), &g); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatGroupSaved("Added", &g))
			return nil
		},
	}

	flags.register(cmd.Flags(), true)

	return cmd
}

func newGroupListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List pile groups with metrics and totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Groups.Report(cmd.Context())
			if err != nil {
				return err
			}
			if len(report.Rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No pile groups yet.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGroupList(report))
			return nil
		},
	}
}

func newGroupShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one pile group and its metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveGroupID(ctx, app, args[0])
			if err != nil {
				return err
			}
			g, err := app.Groups.Get(ctx, id)
			if err != nil {
				return err
			}
			report := contract.BuildGroupReport([]*domain.PileGroup{g})
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatGroupDetail(report.Rows[0]))
			return nil
		},
	}
}

func newGroupUpdateCmd(app *App) *cobra.Command {
	var flags pileFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace a pile group's fields; unset flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			id, err := resolveGroupID(ctx, app, args[0])
			if notResolved(err) {
				fmt.Fprintln(out, formatter.Notice(fmt.Sprintf("No pile group matches %q; nothing updated.", args[0])))
				return nil
			}
			if err != nil {
				return err
			}
			current, err := app.Groups.Get(ctx, id)
			if err != nil {
				return err
			}

			fields := flags.merge(cmd.Flags(), current)
			if err := fields.Validate(); err != nil {
				return err
			}
			found, err := app.Groups.Update(ctx, id, fields)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintln(out, formatter.Notice("Pile group was removed before the update; nothing updated."))
				return nil
			}
			fields.ID = id
			fmt.Fprintln(out, formatter.FormatGroupSaved("Updated", &fields))
			return nil
		},
	}

	flags.register(cmd.Flags(), true)

	return cmd
}

func newGroupRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Remove a pile group",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			id, err := resolveGroupID(ctx, app, args[0])
			if notResolved(err) {
				fmt.Fprintln(out, formatter.Notice(fmt.Sprintf("No pile group matches %q; nothing removed.", args[0])))
				return nil
			}
			if err != nil {
				return err
			}
			found, err := app.Groups.Remove(ctx, id)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintln(out, formatter.Notice("Pile group already removed."))
				return nil
			}
			fmt.Fprintln(out, formatter.Success("Removed "+formatter.TruncID(id)))
			return nil
		},
	}
}

func newGroupTotalsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Show total weight and paint area over all groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Groups.Report(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTotals(report))
			return nil
		},
	}
}

func newGroupImportCmd(app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Add pile groups from a YAML or JSON file",
		Long: `Add every pile group listed in FILE. The file holds a top-level
"groups" list; each entry has name, pile_count, outer_diameter_mm,
wall_thickness_mm, pile_length_m and an optional paint_length_m.
The whole file is validated first and nothing is stored if any
entry is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if dryRun {
				file, err := importer.LoadGroupFile(args[0])
				if err != nil {
					return err
				}
				if err := importer.JoinErrors(importer.ValidateGroupFile(file)); err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.Success(fmt.Sprintf("%s is valid (%d groups)", args[0], len(file.Groups))))
				return nil
			}

			result, err := app.Import.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.Success(fmt.Sprintf("Imported %d groups: %s, %s",
				len(result.Groups),
				formatter.Tonnes(result.Totals.TotalWeight),
				formatter.SquareMetres(result.Totals.TotalPaintArea))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the file without storing anything")

	return cmd
}

func newGroupExportCmd(app *App) *cobra.Command {
	var formatStr, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all pile groups as YAML or JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := exportFormat(formatStr, output)
			if err != nil {
				return err
			}
			data, err := app.Import.Export(cmd.Context(), format)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Wrote "+output))
			return nil
		},
	}

	cmd.Flags().StringVar(&formatStr, "format", "", "Output format: yaml or json (default from --output extension, else yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func exportFormat(flag, output string) (importer.Format, error) {
	if flag != "" {
		return importer.ParseFormat(flag)
	}
	if output != "" {
		return importer.FormatFromPath(output), nil
	}
	return importer.FormatYAML, nil
}

func notResolved(err error) bool {
	var nr errGroupNotResolved
	return errors.As(err, &nr)
}
