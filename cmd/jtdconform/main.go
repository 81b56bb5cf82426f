// Command jtdconform validates JSON or YAML instance documents against a
// JSL schema document from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/json-schema-language/jtd-go"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jtdconform",
		Short: "Validate JSON/YAML instances against a JSON Schema Language schema",
	}
	root.AddCommand(newValidateCmd())
	root.AddCommand(newRegisterCmd())
	root.AddCommand(newCheckSealedCmd())
	return root
}

func newValidateCmd() *cobra.Command {
	var maxErrors, maxDepth int
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate SCHEMA INSTANCE",
		Short: "Validate an instance document against a schema document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := loadSchema(args[0])
			if err != nil {
				return err
			}
			instance, err := loadValue(args[1])
			if err != nil {
				return err
			}

			registry := jtd.NewRegistry()
			if _, err := registry.Register(schema); err != nil {
				return err
			}
			if !registry.IsSealed() {
				return fmt.Errorf("schema references undefined documents: %v", registry.MissingIDs())
			}

			cfg := jtd.NewConfig().
				WithMaxErrors(maxErrors).
				WithMaxDepth(maxDepth).
				WithStrictInstanceSemantics(strict)
			validator := jtd.NewValidator(registry, cfg)

			errs, err := validator.Validate(schema, instance)
			if err != nil {
				return err
			}
			if len(errs) == 0 {
				fmt.Println("ok")
				return nil
			}
			for _, e := range errs {
				fmt.Printf("%s\t%s\n", e.InstancePointer(), e.SchemaPointer())
			}
			os.Exit(1)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxErrors, "max-errors", 0, "stop after this many errors (0 = unlimited)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 32, "maximum ref traversal depth")
	cmd.Flags().BoolVar(&strict, "strict", false, "enable strict instance semantics")
	return cmd
}

// newRegisterCmd registers one or more schema documents into a single
// Registry, in the order given, and reports the resulting MissingIDs/
// sealed status after each one — the incremental register → fetch(missing)
// → register loop §4.2 describes, run by hand from the command line.
func newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register SCHEMA [SCHEMA...]",
		Short: "Register schema documents into one registry and report sealed status",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := jtd.NewRegistry()
			for _, path := range args {
				schema, err := loadSchema(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				missing, err := registry.Register(schema)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				id := "(anonymous)"
				if schema.ID != nil {
					id = *schema.ID
				}
				fmt.Printf("registered %s: %s\n", path, id)
				if len(missing) > 0 {
					fmt.Printf("  still missing: %v\n", missing)
				}
			}
			if registry.IsSealed() {
				fmt.Println("sealed")
				return nil
			}
			fmt.Printf("unsealed, missing: %v\n", registry.MissingIDs())
			os.Exit(1)
			return nil
		},
	}
}

func newCheckSealedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-sealed SCHEMA",
		Short: "Report whether a schema document references any undefined documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := loadSchema(args[0])
			if err != nil {
				return err
			}
			registry := jtd.NewRegistry()
			if _, err := registry.Register(schema); err != nil {
				return err
			}
			if registry.IsSealed() {
				fmt.Println("sealed")
				return nil
			}
			fmt.Printf("missing: %v\n", registry.MissingIDs())
			os.Exit(1)
			return nil
		},
	}
}

func loadSchema(path string) (*jtd.Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data, err := decodeDocument(path, raw)
	if err != nil {
		return nil, err
	}
	var serde jtd.Serde
	if err := json.Unmarshal(data, &serde); err != nil {
		return nil, fmt.Errorf("decoding schema: %w", err)
	}
	return jtd.Canonicalize(&serde, true, nil)
}

func loadValue(path string) (interface{}, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data, err := decodeDocument(path, raw)
	if err != nil {
		return nil, err
	}
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decoding instance: %w", err)
	}
	return v, nil
}

// decodeDocument re-encodes YAML documents to JSON so the rest of the
// pipeline only ever has to speak JSON; files not ending in .yaml/.yml
// pass through untouched.
func decodeDocument(path string, raw []byte) ([]byte, error) {
	if !isYAMLPath(path) {
		return raw, nil
	}
	var v interface{}
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}
	return json.Marshal(v)
}

func isYAMLPath(path string) bool {
	for _, ext := range []string{".yaml", ".yml"} {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}
