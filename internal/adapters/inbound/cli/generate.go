package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ryanpate/invoice-generator-pro/internal/adapters/outbound/config"
	"github.com/ryanpate/invoice-generator-pro/internal/adapters/outbound/pdf"
	"github.com/ryanpate/invoice-generator-pro/internal/application"
	"github.com/ryanpate/invoice-generator-pro/internal/domain"
)

func newGenerateCmd() *cobra.Command {
	var (
		requestPath  string
		companyPath  string
		templateName string
		logoPath     string
		outPath      string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a single PDF invoice from a YAML request file",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := config.New().Load(companyPath)
			if err != nil {
				return err
			}
			req, err := config.LoadRequest(requestPath)
			if err != nil {
				return err
			}

			// Template precedence: flag, request file, profile.
			name := templateName
			if name == "" {
				name = req.Template
			}
			if name == "" {
				name = profile.Template
			}
			template, err := domain.ParseTemplate(name)
			if err != nil {
				return err
			}

			logo := logoPath
			if logo == "" {
				logo = req.LogoPath
			}

			svc := application.NewGenerateService(pdf.New(), newLogger(verbose))
			out, err := svc.Generate(application.SingleInvoiceRequest{
				Company:      profile,
				Client:       req.Client,
				Number:       req.Number,
				Date:         req.Date,
				PaymentTerms: req.PaymentTerms,
				Currency:     req.Currency,
				Items:        req.Items,
				TaxRate:      req.TaxRate,
				Notes:        req.Notes,
				Template:     template,
				LogoPath:     logo,
			})
			if err != nil {
				return err
			}

			dest := outPath
			if dest == "" {
				dest = out.FileName
			}
			if err := os.WriteFile(dest, out.PDF, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", dest, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s for %s (%s)\n",
				dest, out.Invoice.Client.Name, out.Invoice.TotalDisplay())
			return nil
		},
	}

	cmd.Flags().StringVarP(&requestPath, "file", "f", "", "YAML invoice request file")
	cmd.Flags().StringVarP(&companyPath, "company", "c", "", "company profile file (default "+config.DefaultProfileFile+")")
	cmd.Flags().StringVarP(&templateName, "template", "t", "", "style template (modern_minimal, corporate_blue, creative_gradient)")
	cmd.Flags().StringVar(&logoPath, "logo", "", "logo image path")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output PDF path (default derived from invoice number and client)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
