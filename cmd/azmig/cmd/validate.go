/*
Copyright 2024 The AzMig Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/azure/scope"
	"github.com/mayoit/azmig-tool-assistant/validation"
	"github.com/mayoit/azmig-tool-assistant/validation/config"
	"github.com/mayoit/azmig-tool-assistant/validation/engine"
	"github.com/mayoit/azmig-tool-assistant/validation/matcher"
)

type validateOptions struct {
	planPath   string
	configPath string
	profile    string
	overrides  []string

	cloudEnvironment string
	subscriptionID   string
	tenantID         string
	clientID         string
	principalID      string

	matchProjects bool
	outputPath    string
	enableTracing bool
	otlpEndpoint  string
}

func validateCmd() *cobra.Command {
	opts := &validateOptions{}
	newCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a migration plan against live Azure",
		Long: `Validate runs the project tier over every declared migrate project and the
server tier over every declared machine, then writes the full report as
JSON. The command exits 0 when everything passed, 1 when any project or
machine failed, and 2 when the plan or the configuration is unusable.

The identity is resolved like the Azure SDK does: a client secret from
AZURE_CLIENT_SECRET when --tenant-id and --client-id are set, the default
credential chain otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context())
		},
	}

	opts.bindFlags(newCmd.Flags())
	_ = newCmd.MarkFlagRequired("plan")

	return newCmd
}

func (o *validateOptions) bindFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.planPath, "plan", "", "Path to the plan YAML declaring projects and machines, \"-\" for stdin.")
	flags.StringVar(&o.configPath, "config", "", "Path to the validation configuration YAML. Defaults apply when unset.")
	flags.StringVar(&o.profile, "profile", "", "Configuration profile to apply on top of the document.")
	flags.StringArrayVar(&o.overrides, "set", nil, "Configuration override as path=value, e.g. global.fail_fast=false. Repeatable.")
	flags.StringVar(&o.cloudEnvironment, "cloud", "", "Azure cloud to run against: AzurePublicCloud, AzureChinaCloud or AzureUSGovernmentCloud.")
	flags.StringVar(&o.subscriptionID, "subscription-id", "", "Default subscription for calls outside any declaration.")
	flags.StringVar(&o.tenantID, "tenant-id", "", "Tenant of the running identity.")
	flags.StringVar(&o.clientID, "client-id", "", "Client ID of the running identity.")
	flags.StringVar(&o.principalID, "principal-id", "", "Object ID of the running identity, required by the RBAC checks.")
	flags.BoolVar(&o.matchProjects, "match", false, "Match machines declared without a project to the declared projects.")
	flags.StringVar(&o.outputPath, "output", "", "Write the JSON report to this file instead of stdout.")
	flags.BoolVar(&o.enableTracing, "enable-tracing", false, "Export OpenTelemetry traces of the run over OTLP.")
	flags.StringVar(&o.otlpEndpoint, "otlp-endpoint", "localhost:4317", "OTLP gRPC endpoint traces are exported to.")
}

func (o *validateOptions) run(ctx context.Context) error {
	log := klog.Background().WithName("azmig")

	plan, err := loadPlan(o.planPath)
	if err != nil {
		return badInputError{err}
	}
	cfg, err := o.resolveConfig()
	if err != nil {
		return err
	}

	if o.enableTracing {
		shutdown, err := initTracing(ctx, o.otlpEndpoint)
		if err != nil {
			return errors.Wrap(err, "failed to init tracing")
		}
		defer shutdown()
	}

	credential, err := o.credential()
	if err != nil {
		return errors.Wrap(err, "failed to resolve a credential")
	}
	validationScope, err := scope.NewValidationScope(scope.ValidationScopeParams{
		SubscriptionID:   o.subscriptionID,
		TenantID:         o.tenantID,
		ClientID:         o.clientID,
		PrincipalID:      o.principalID,
		CloudEnvironment: o.cloudEnvironment,
		Credential:       credential,
	})
	if err != nil {
		return err
	}

	engineOpts := engine.Options{Scope: validationScope, Config: cfg}
	if o.matchProjects {
		engineOpts.Match = matcher.New(validationScope, plan.Projects).Match
	}
	eng, err := engine.New(engineOpts)
	if err != nil {
		return err
	}

	log.V(2).Info("validating plan",
		"projects", len(plan.Projects), "machines", len(plan.Machines), "config", cfg.Fingerprint())
	result := eng.Run(ctx, plan.Projects, plan.Machines)

	if err := o.writeReport(result); err != nil {
		return err
	}
	if result.HasFailures() {
		return errFailuresFound
	}
	return nil
}

func (o *validateOptions) resolveConfig() (*config.Resolved, error) {
	var doc *config.Document
	if o.configPath != "" {
		var err error
		doc, err = config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
	}
	return config.Resolve(doc, o.profile, o.overrides)
}

// credential picks the identity of the run. A client secret in the
// environment wins when the caller named a tenant and client; otherwise the
// default chain covers CLI logins, managed identities and workload
// identities.
func (o *validateOptions) credential() (azcore.TokenCredential, error) {
	cache := azure.NewCredentialCache()
	if secret := os.Getenv("AZURE_CLIENT_SECRET"); secret != "" && o.tenantID != "" && o.clientID != "" {
		return cache.GetOrStoreClientSecret(o.tenantID, o.clientID, secret, nil)
	}
	return cache.GetOrStoreDefault(nil)
}

func (o *validateOptions) writeReport(result validation.Run) error {
	var out io.Writer = os.Stdout
	if o.outputPath != "" {
		f, err := os.Create(o.outputPath)
		if err != nil {
			return errors.Wrapf(err, "failed to create report file %s", o.outputPath)
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(result), "failed to write the report")
}
