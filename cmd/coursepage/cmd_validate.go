package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"coursepage/internal/config"
	"coursepage/internal/content"
	"coursepage/internal/domain"
)

// validateCmd checks a content file and summarises its sections
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a content file",
	Long: `Parse and validate a content file and list its sections. Without an argument
the file from --content or the config is checked, or the built-in page.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, err := validatePath(args)
	if err != nil {
		return err
	}
	page, err := content.Load(path)
	if err != nil {
		return err
	}

	label := path
	if label == "" {
		label = "built-in page"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d sections ok\n\n", label, len(page.Sections))
	fmt.Fprintln(cmd.OutOrStdout(), sectionTable(page))
	return nil
}

func validatePath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if contentPath != "" {
		return contentPath, nil
	}
	cfg, err := config.NewConfigService(configPath, nil).Load()
	if err != nil {
		return "", err
	}
	return cfg.ContentFile, nil
}

// sectionTable lists kind, id and item count per section. Item count is blank for
// sections that are not carousels or accordions.
func sectionTable(page *domain.Page) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "KIND", "ID", "ITEMS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for i, s := range page.Sections {
		items := ""
		switch s.Kind() {
		case domain.KindTestimonials, domain.KindFAQ, domain.KindModules:
			items = strconv.Itoa(content.ItemCount(s))
		}
		t.Row(strconv.Itoa(i+1), string(s.Kind()), s.Header().ID, items)
	}
	return t.String()
}
