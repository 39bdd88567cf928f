package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bluetide-io/bluetide/pkg/ocean"
	"github.com/spf13/cobra"
)

// NewDomainsCommand creates the domains command group
func NewDomainsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "domains",
		Aliases: []string{"domain"},
		Short:   "Manage DNS domains",
		Long:    "List and manage DNS domains and their records",
	}

	cmd.AddCommand(newDomainsListCommand())
	cmd.AddCommand(newDomainsGetCommand())
	cmd.AddCommand(newDomainsCreateCommand())
	cmd.AddCommand(newDomainsDeleteCommand())
	cmd.AddCommand(newDomainsRecordsCommand())

	return cmd
}

func newDomainsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List domains",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			domains, err := ocean.Execute(context.Background(), client, ocean.ListDomains())
			if err != nil {
				return err
			}

			if done, err := renderStructured(domains); done {
				return err
			}

			rows := make([][]string, 0, len(domains))
			for _, domain := range domains {
				rows = append(rows, []string{domain.Name, strconv.Itoa(domain.TTL)})
			}

			return renderTable([]string{"Name", "TTL"}, rows)
		},
	}
}

func newDomainsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DOMAIN_NAME",
		Short: "Show one domain, including its zone file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			domain, err := ocean.Execute(context.Background(), client, ocean.GetDomain(args[0]).Req())
			if err != nil {
				return err
			}

			if done, err := renderStructured(domain); done {
				return err
			}

			fmt.Printf("Name: %s\nTTL: %d\n\n%s\n", domain.Name, domain.TTL, domain.ZoneFile)

			return nil
		},
	}
}

func newDomainsCreateCommand() *cobra.Command {
	var ipAddress string

	cmd := &cobra.Command{
		Use:   "create DOMAIN_NAME",
		Short: "Add a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			domain, err := ocean.Execute(context.Background(), client, ocean.CreateDomain(args[0], ipAddress))
			if err != nil {
				return err
			}

			if done, err := renderStructured(domain); done {
				return err
			}

			fmt.Printf("Created domain %s\n", domain.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&ipAddress, "ip-address", "", "IP address for the initial A record")
	_ = cmd.MarkFlagRequired("ip-address")

	return cmd
}

func newDomainsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete DOMAIN_NAME",
		Short: "Remove a domain and all its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = ocean.Execute(context.Background(), client, ocean.GetDomain(args[0]).Delete())
			if err != nil {
				return err
			}

			fmt.Printf("Deleted domain %s\n", args[0])

			return nil
		},
	}
}

func newDomainsRecordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "records",
		Aliases: []string{"record"},
		Short:   "Manage DNS records",
	}

	cmd.AddCommand(newRecordsListCommand())
	cmd.AddCommand(newRecordsCreateCommand())
	cmd.AddCommand(newRecordsUpdateCommand())
	cmd.AddCommand(newRecordsDeleteCommand())

	return cmd
}

func recordRows(records ocean.DomainRecords) [][]string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Type,
			record.Name,
			record.Data,
			strconv.Itoa(record.TTL),
		})
	}

	return rows
}

func newRecordsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list DOMAIN_NAME",
		Short: "List a domain's records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			records, err := ocean.Execute(context.Background(), client, ocean.GetDomain(args[0]).Records().Req())
			if err != nil {
				return err
			}

			if done, err := renderStructured(records); done {
				return err
			}

			return renderTable([]string{"ID", "Type", "Name", "Data", "TTL"}, recordRows(records))
		},
	}
}

func newRecordsCreateCommand() *cobra.Command {
	var create ocean.DomainRecordUpdateRequest

	cmd := &cobra.Command{
		Use:   "create DOMAIN_NAME",
		Short: "Add a record to a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if create.Type == "" || create.Name == "" || create.Data == "" {
				return ErrRecordDataRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			record, err := ocean.Execute(context.Background(), client, ocean.GetDomain(args[0]).Records().Create(create))
			if err != nil {
				return err
			}

			if done, err := renderStructured(record); done {
				return err
			}

			fmt.Printf("Created record %d (%s %s)\n", record.ID, record.Type, record.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&create.Type, "type", "", "record type (A, AAAA, CNAME, MX, TXT, SRV, NS)")
	cmd.Flags().StringVar(&create.Name, "name", "", "record host name")
	cmd.Flags().StringVar(&create.Data, "data", "", "record data")
	cmd.Flags().IntVar(&create.Priority, "priority", 0, "record priority (MX, SRV)")
	cmd.Flags().IntVar(&create.Port, "port", 0, "record port (SRV)")
	cmd.Flags().IntVar(&create.TTL, "ttl", 0, "record TTL in seconds")
	cmd.Flags().IntVar(&create.Weight, "weight", 0, "record weight (SRV)")

	return cmd
}

func newRecordsUpdateCommand() *cobra.Command {
	var update ocean.DomainRecordUpdateRequest

	cmd := &cobra.Command{
		Use:   "update DOMAIN_NAME RECORD_ID",
		Short: "Replace the mutable fields of a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			record, err := ocean.Execute(context.Background(), client, ocean.GetDomain(args[0]).Records().Update(id, update))
			if err != nil {
				return err
			}

			if done, err := renderStructured(record); done {
				return err
			}

			fmt.Printf("Updated record %d\n", record.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&update.Type, "type", "", "record type")
	cmd.Flags().StringVar(&update.Name, "name", "", "record host name")
	cmd.Flags().StringVar(&update.Data, "data", "", "record data")
	cmd.Flags().IntVar(&update.TTL, "ttl", 0, "record TTL in seconds")

	return cmd
}

func newRecordsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete DOMAIN_NAME RECORD_ID",
		Short: "Remove a record from a domain",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = ocean.Execute(context.Background(), client, ocean.GetDomain(args[0]).Records().Delete(id))
			if err != nil {
				return err
			}

			fmt.Printf("Deleted record %d from %s\n", id, args[0])

			return nil
		},
	}
}
