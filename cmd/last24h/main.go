package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/younsl/last24h/internal/version"
	"github.com/younsl/last24h/pkg/aws"
	"github.com/younsl/last24h/pkg/report"
	"github.com/younsl/last24h/pkg/utils"
)

// options holds the parsed command line flags
type options struct {
	region      string
	debug       bool
	showVersion bool
}

func main() {
	if err := newRootCmd(run).ExecuteContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("summary failed")
	}
}

// newRootCmd builds the root command; runSummary is called once flags are validated
func newRootCmd(runSummary func(ctx context.Context, opts options) error) *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "last24h",
		Short: "Print yesterday's AWS spend and the resources running now",
		Long: `last24h queries Cost Explorer for the previous UTC day's unblended cost
per service, then lists running EC2 instances, available RDS instances and
clusters, S3 buckets, Lambda functions and DynamoDB tables.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), version.Get())
				return nil
			}

			if opts.debug {
				logrus.SetLevel(logrus.DebugLevel)
			}

			if opts.region != "" && !utils.IsValidRegion(opts.region) {
				return fmt.Errorf("unknown region '%s'", opts.region)
			}

			return runSummary(cmd.Context(), opts)
		},
	}

	rootCmd.Flags().BoolVarP(&opts.showVersion, "version", "v", false, "Show version information")
	rootCmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging on stderr")
	rootCmd.Flags().StringVarP(&opts.region, "region", "r", "",
		"AWS region for the resource inventory (default: region from the AWS environment)")

	return rootCmd
}

// run wires the AWS clients into both reporters and prints the summary to stdout
func run(ctx context.Context, opts options) error {
	cfg, err := aws.LoadConfig(ctx, opts.region)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"region":     cfg.Region,
		"regionName": utils.GetRegionDescriptiveName(cfg.Region),
	}).Debug("loaded AWS config")

	progress := &report.Progress{
		Enabled: true,
		Writer:  os.Stderr,
		Logger:  logrus.StandardLogger(),
	}

	ec2Client := aws.NewEC2Client(cfg)
	rdsClient := aws.NewRDSClient(cfg)
	sources := report.Sources{
		Instances:   ec2Client.GetRunningInstances,
		DBInstances: rdsClient.GetDBInstances,
		DBClusters:  rdsClient.GetDBClusters,
		Buckets:     aws.NewS3Client(cfg).GetBuckets,
		Functions:   aws.NewLambdaClient(cfg).GetFunctions,
		Tables:      aws.NewDynamoDBClient(cfg).GetTables,
	}

	return report.Run(ctx, os.Stdout,
		report.NewCostReporter(aws.NewCostExplorerClient(cfg), progress),
		report.NewInventoryReporter(sources, progress),
	)
}
