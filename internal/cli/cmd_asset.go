package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dkuzmenko/wisdomvault/internal/models"
)

func newAssetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "Manage user-defined asset records",
	}
	cmd.AddCommand(newAssetTypeCmd(app))
	cmd.AddCommand(newAssetAddCmd(app))
	cmd.AddCommand(newAssetListCmd(app))
	cmd.AddCommand(newAssetRmCmd(app))
	return cmd
}

func newAssetTypeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type",
		Short: "Manage asset types",
	}

	var fields []string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Declare an asset type with an ordered field schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := parseFieldDefs(fields)
			if err != nil {
				return err
			}
			t, err := app.assets.AddType(cmd.Context(), args[0], defs)
			if err != nil {
				return err
			}
			fmt.Printf("created asset type %s (%s)\n", t.Name, t.Id)
			return nil
		},
	}
	add.Flags().StringSliceVar(&fields, "field", nil, "field declaration name:type (text, number, date, bool); repeatable, order is kept")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List asset types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := app.repos.Assets.ListTypes(cmd.Context())
			if err != nil {
				return err
			}
			for _, t := range types {
				names := make([]string, 0, len(t.Fields))
				for _, f := range t.Fields {
					names = append(names, fmt.Sprintf("%s:%s", f.Name, f.Type))
				}
				fmt.Printf("%s  %s  [%s]\n", t.Id, t.Name, strings.Join(names, ", "))
			}
			return nil
		},
	})
	return cmd
}

func newAssetAddCmd(app *App) *cobra.Command {
	var typeID, name string
	var fields []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an asset record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFieldValues(fields)
			if err != nil {
				return err
			}
			a, err := app.assets.Add(cmd.Context(), typeID, name, values)
			if err != nil {
				return err
			}
			fmt.Printf("created asset %s (%s)\n", a.Name, a.Id)
			return nil
		},
	}
	cmd.Flags().StringVar(&typeID, "type", "", "asset type id")
	cmd.Flags().StringVar(&name, "name", "", "asset name")
	cmd.Flags().StringSliceVar(&fields, "field", nil, "field value name=value; repeatable")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newAssetListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List asset records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			assets, err := app.repos.Assets.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, a := range assets {
				pairs := make([]string, 0, len(a.Fields))
				for _, f := range a.Fields {
					pairs = append(pairs, fmt.Sprintf("%s=%s", f.Name, f.Value))
				}
				fmt.Printf("%s  %s  %s\n", a.Id, a.Name, strings.Join(pairs, " "))
			}
			return nil
		},
	}
}

func newAssetRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an asset record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.repos.Assets.DeleteByID(cmd.Context(), args[0])
		},
	}
}

func parseFieldDefs(raw []string) ([]models.FieldDef, error) {
	defs := make([]models.FieldDef, 0, len(raw))
	for _, item := range raw {
		name, typ, ok := strings.Cut(item, ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("field declaration must be name:type, got %q", item)
		}
		defs = append(defs, models.FieldDef{Name: name, Type: models.FieldType(typ)})
	}
	return defs, nil
}

func parseFieldValues(raw []string) (map[string]string, error) {
	values := make(map[string]string, len(raw))
	for _, item := range raw {
		name, value, ok := strings.Cut(item, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("field value must be name=value, got %q", item)
		}
		values[name] = value
	}
	return values, nil
}
