package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ryanpate/invoice-generator-pro/internal/adapters/outbound/archive"
	"github.com/ryanpate/invoice-generator-pro/internal/adapters/outbound/config"
	"github.com/ryanpate/invoice-generator-pro/internal/adapters/outbound/history"
	"github.com/ryanpate/invoice-generator-pro/internal/adapters/outbound/pdf"
	"github.com/ryanpate/invoice-generator-pro/internal/adapters/outbound/tabular"
	"github.com/ryanpate/invoice-generator-pro/internal/adapters/outbound/tui"
	"github.com/ryanpate/invoice-generator-pro/internal/application"
	"github.com/ryanpate/invoice-generator-pro/internal/domain"
)

func newBatchCmd() *cobra.Command {
	var (
		inputPath    string
		companyPath  string
		templateName string
		logoPath     string
		outPath      string
		startSeq     int
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate one invoice per client from a CSV or XLSX table",
		Long:  "Batch reads a table of line items, groups rows by client name and email, and renders one PDF invoice per client into a zip archive.",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := config.New().Load(companyPath)
			if err != nil {
				return err
			}

			name := templateName
			if name == "" {
				name = profile.Template
			}
			template, err := domain.ParseTemplate(name)
			if err != nil {
				return err
			}

			logo := logoPath
			if logo == "" {
				logo = profile.LogoPath
			}

			f, err := os.Open(inputPath)
			if err != nil {
				return err
			}
			defer f.Close()

			table, err := readerFor(inputPath).Read(f)
			if err != nil {
				return fmt.Errorf("reading %s: %w", inputPath, err)
			}

			dest := outPath
			if dest == "" {
				dest = fmt.Sprintf("invoices_batch_%s.zip", time.Now().Format("20060102_150405"))
			}

			// Numbering continues across same-day runs via the run
			// history next to the archives, unless --start-seq is set.
			runs := history.New()
			dateKey := time.Now().Format("20060102")
			if !cmd.Flags().Changed("start-seq") {
				startSeq, err = runs.NextSequence(filepath.Dir(dest), dateKey)
				if err != nil {
					return err
				}
			}

			svc := application.NewBatchService(pdf.New(), newLogger(verbose))
			result, err := svc.Process(application.BatchRequest{
				Table:         table,
				Company:       profile,
				Template:      template,
				LogoPath:      logo,
				StartSequence: startSeq,
			})
			if err != nil {
				if result != nil && len(result.Summary.Entries) > 0 {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderBatchSummary(result.Summary))
				}
				var schemaErr *domain.SchemaError
				var rowErr *domain.RowError
				if errors.As(err, &schemaErr) || errors.As(err, &rowErr) {
					return fmt.Errorf("invalid input table: %w", err)
				}
				return err
			}

			entries := make([]domain.ArchiveEntry, 0, len(result.Invoices))
			for _, inv := range result.Invoices {
				entries = append(entries, domain.ArchiveEntry{
					Name: inv.FileName,
					Data: inv.PDF,
				})
			}
			zipData, err := archive.New().Archive(entries)
			if err != nil {
				return err
			}

			if err := os.WriteFile(dest, zipData, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", dest, err)
			}
			record := domain.RunRecord{
				Timestamp:    time.Now().Format(time.RFC3339),
				Date:         dateKey,
				LastSequence: startSeq + len(result.Invoices) - 1,
				Invoices:     len(result.Invoices),
				Archive:      filepath.Base(dest),
			}
			if err := runs.Save(filepath.Dir(dest), record); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderBatchSummary(result.Summary))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d invoices to %s\n", len(result.Invoices), dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "file", "f", "", "input CSV or XLSX file")
	cmd.Flags().StringVarP(&companyPath, "company", "c", "", "company profile file (default "+config.DefaultProfileFile+")")
	cmd.Flags().StringVarP(&templateName, "template", "t", "", "style template (modern_minimal, corporate_blue, creative_gradient)")
	cmd.Flags().StringVar(&logoPath, "logo", "", "logo image path")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output zip path (default invoices_batch_<timestamp>.zip)")
	cmd.Flags().IntVar(&startSeq, "start-seq", 1, "first invoice sequence number")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readerFor(path string) domain.TableReader {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return tabular.NewXLSX()
	}
	return tabular.NewCSV()
}
