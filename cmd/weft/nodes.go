package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	goyaml "github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/weftlabs/weft/builtin"
	"github.com/weftlabs/weft/yaml"
)

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "List available node types",
	Long:  `Nodes lists all built-in node types that can appear in chain definitions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listNodes()
	},
}

var nodesInfoCmd = &cobra.Command{
	Use:   "info <type>",
	Short: "Show detailed information about a node type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showNodeInfo(args[0])
	},
}

func init() {
	nodesCmd.AddCommand(nodesInfoCmd)
	rootCmd.AddCommand(nodesCmd)
}

func catalog() []builtin.NodeMetadata {
	registry := builtin.RegisterAll(yaml.NewLoader(), false)

	var metas []builtin.NodeMetadata
	for _, builder := range registry.All() {
		metas = append(metas, builder.Metadata())
	}
	sort.Slice(metas, func(i, j int) bool {
		if metas[i].Category != metas[j].Category {
			return metas[i].Category < metas[j].Category
		}
		return metas[i].Type < metas[j].Type
	})
	return metas
}

func listNodes() error {
	metas := catalog()

	switch output {
	case "json":
		data, err := json.MarshalIndent(metas, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal catalog: %w", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := goyaml.Marshal(metas)
		if err != nil {
			return fmt.Errorf("marshal catalog: %w", err)
		}
		fmt.Print(string(data))
	default:
		category := ""
		for _, meta := range metas {
			if meta.Category != category {
				category = meta.Category
				fmt.Printf("\n%s:\n", strings.ToUpper(category[:1])+category[1:])
			}
			fmt.Printf("  %-12s %s\n", meta.Type, meta.Description)
		}
		fmt.Println("\nUse \"weft nodes info <type>\" for details.")
	}
	return nil
}

func showNodeInfo(nodeType string) error {
	registry := builtin.RegisterAll(yaml.NewLoader(), false)
	builder, ok := registry.Get(nodeType)
	if !ok {
		return fmt.Errorf("unknown node type %q", nodeType)
	}
	meta := builder.Metadata()

	switch output {
	case "json":
		data, err := json.MarshalIndent(meta, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal metadata: %w", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := goyaml.Marshal(meta)
		if err != nil {
			return fmt.Errorf("marshal metadata: %w", err)
		}
		fmt.Print(string(data))
	default:
		fmt.Printf("Type:        %s\n", meta.Type)
		fmt.Printf("Category:    %s\n", meta.Category)
		fmt.Printf("Description: %s\n", meta.Description)
		if meta.Since != "" {
			fmt.Printf("Since:       %s\n", meta.Since)
		}
		if len(meta.ConfigSchema) > 0 {
			fmt.Println("\nConfig schema:")
			data, err := goyaml.Marshal(meta.ConfigSchema)
			if err != nil {
				return fmt.Errorf("marshal schema: %w", err)
			}
			fmt.Print(indent(string(data), "  "))
		}
		for _, ex := range meta.Examples {
			fmt.Printf("\nExample: %s\n", ex.Name)
			if ex.Description != "" {
				fmt.Printf("  %s\n", ex.Description)
			}
			data, err := goyaml.Marshal(ex.Config)
			if err != nil {
				return fmt.Errorf("marshal example: %w", err)
			}
			fmt.Print(indent(string(data), "  "))
		}
	}
	return nil
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n") + "\n"
}
