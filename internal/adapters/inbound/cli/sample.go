package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const sampleCSV = `client_name,client_email,item_description,quantity,rate,client_address,client_phone,tax_rate,currency,payment_terms,notes
Acme Corp,billing@acme.com,Website redesign,1,1500,"123 Main St, Springfield",555-0100,8.5,USD,Net 30,Thanks for the continued partnership!
Acme Corp,billing@acme.com,Annual hosting,1,240,,,,,,
Globex Inc,accounts@globex.com,Consulting hours,10,120,"742 Evergreen Terrace, Shelbyville",555-0199,0,USD,Net 15,
Globex Inc,accounts@globex.com,On-site training day,2,800,,,,,,
Initech LLC,ap@initech.com,TPS report automation,1,950,,,,EUR,Due on Receipt,
`

func newSampleCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a sample batch CSV to get started",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath == "-" {
				fmt.Fprint(cmd.OutOrStdout(), sampleCSV)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(sampleCSV), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "sample_invoice_batch.csv", "output path, or - for stdout")

	return cmd
}
