package main

import (
	"bufio"
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"coursepage/internal/web"
)

var (
	exportOut    string
	exportSlide  int
	exportFAQ    int
	exportModule int
)

// exportCmd writes the page as one standalone HTML file
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the page as a standalone HTML file",
	Long: `Write the landing page as a single HTML document with its stylesheet inlined.
--slide, --faq and --module pick the carousel item and the open panels, the same
way the query string does for serve.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "-", "Output file, - for stdout")
	exportCmd.Flags().IntVar(&exportSlide, "slide", 0, "Active testimonial")
	exportCmd.Flags().IntVar(&exportFAQ, "faq", 0, "Open FAQ panel")
	exportCmd.Flags().IntVar(&exportModule, "module", 0, "Open module panel")
}

// exportQuery turns the changed state flags into the query the renderer understands
func exportQuery(cmd *cobra.Command) url.Values {
	q := url.Values{}
	for flag, param := range map[string]string{
		"slide":  web.ParamSlide,
		"faq":    web.ParamFAQ,
		"module": web.ParamModule,
	} {
		f := cmd.Flags().Lookup(flag)
		if f != nil && f.Changed {
			q.Set(param, f.Value.String())
		}
	}
	return q
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	if exportOut != "-" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOut, err)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	if err := web.Export(w, a.page, a.md, exportQuery(cmd)); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	if exportOut != "-" {
		a.log.Info("exported page", zap.String("out", exportOut))
	}
	return nil
}
