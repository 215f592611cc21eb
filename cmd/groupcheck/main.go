// Command groupcheck reports supervisors that own more than one group in a
// department and optionally merges those groups into one.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Dolapo001/SPAS/internal/config"
	"github.com/Dolapo001/SPAS/internal/database"
	"github.com/Dolapo001/SPAS/internal/logger"
	"github.com/Dolapo001/SPAS/internal/repository"
	"github.com/Dolapo001/SPAS/internal/service"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	gormlogger "gorm.io/gorm/logger"
)

type serviceFactory func() (service.DuplicateServiceInterface, error)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	if err := newRootCmd(connect).Execute(); err != nil {
		os.Exit(1)
	}
}

func connect() (service.DuplicateServiceInterface, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFile)

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{LogLevel: gormlogger.Silent})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return service.NewDuplicateService(repository.NewGroupRepository(db)), nil
}

func newRootCmd(newService serviceFactory) *cobra.Command {
	var (
		opts       service.DuplicateOptions
		department string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "groupcheck",
		Short: "Find supervisors owning more than one group in a department",
		Long: `groupcheck lists every (supervisor, department) pair that owns more than one group.

With --resolve it picks the group to keep (the earliest or latest created) and
prints the merge plan. Add --apply to move the members into the kept group and
delete the others in a single transaction.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var deptID *uuid.UUID
			if department != "" {
				id, err := uuid.Parse(department)
				if err != nil {
					return fmt.Errorf("invalid --department: %w", err)
				}
				deptID = &id
			}
			if opts.Apply && !opts.Resolve {
				return fmt.Errorf("--apply requires --resolve")
			}

			svc, err := newService()
			if err != nil {
				return err
			}

			report, err := svc.Check(deptID, opts)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printReport(cmd.OutOrStdout(), report, opts)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.Resolve, "resolve", false, "choose a group to keep in each duplicate set")
	flags.StringVar(&opts.Keep, "keep", service.KeepFirst, "which group to keep: first or last")
	flags.BoolVar(&opts.Apply, "apply", false, "commit the resolution (requires --resolve)")
	flags.StringVar(&department, "department", "", "restrict the check to one department ID")
	flags.BoolVar(&asJSON, "json", false, "print the report as JSON")

	return cmd
}

func printReport(w io.Writer, report *service.DuplicateReport, opts service.DuplicateOptions) {
	if len(report.Sets) == 0 {
		fmt.Fprintln(w, "No duplicate groups found.")
		return
	}

	fmt.Fprintf(w, "Found %d supervisor(s) with more than one group.\n", len(report.Sets))
	for _, set := range report.Sets {
		fmt.Fprintf(w, "\n%s (%d groups)\n", set.SupervisorName, len(set.Groups))
		for _, g := range set.Groups {
			marker := " "
			if g.Keep {
				marker = "*"
			}
			fmt.Fprintf(w, "  %s Group %d  %s  %d student(s)\n", marker, g.Number, g.ID, g.Students)
		}
		if set.Resolution != nil {
			fmt.Fprintf(w, "  merged %d student(s), deleted %d group(s)\n",
				set.Resolution.MovedStudents, len(set.Resolution.DeletedGroupIDs))
		}
	}

	switch {
	case report.Applied:
		fmt.Fprintln(w, "\nResolution applied.")
	case opts.Resolve:
		fmt.Fprintln(w, "\nDry run: rerun with --apply to merge the groups marked *.")
	}
}
