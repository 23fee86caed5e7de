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

package servers

import (
	"context"
	"fmt"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/azure/services/virtualnetworks"
	"github.com/mayoit/azmig-tool-assistant/validation"
)

// azureReservedIPs is the number of addresses Azure holds back in every
// subnet: network, broadcast, gateway and two DNS addresses.
const azureReservedIPs = 5

// checkVNetSubnet verifies the target virtual network and subnet exist, the
// subnet is not delegated to a service, and enough IP addresses remain for
// the migrated machine.
func (v *Validator) checkVNetSubnet(ctx context.Context) validation.Outcome {
	id := validation.CheckServerVNetSubnet
	machine := v.Machine

	if _, err := v.Networks.Get(ctx, machine.TargetResourceGroup, machine.TargetVNet); err != nil {
		if azure.ResourceNotFound(err) {
			return validation.Outcome{
				CheckID:    id,
				Severity:   validation.SeverityFailure,
				Summary:    fmt.Sprintf("virtual network %q not found in resource group %q", machine.TargetVNet, machine.TargetResourceGroup),
				CauseTrace: azure.RequestID(err),
			}
		}
		return providerOutcome(id, "failed to read the target virtual network", err)
	}

	subnet, err := v.Networks.GetSubnet(ctx, machine.TargetResourceGroup, machine.TargetVNet, machine.TargetSubnet)
	if err != nil {
		if azure.ResourceNotFound(err) {
			return validation.Outcome{
				CheckID:    id,
				Severity:   validation.SeverityFailure,
				Summary:    fmt.Sprintf("subnet %q not found in virtual network %q", machine.TargetSubnet, machine.TargetVNet),
				CauseTrace: azure.RequestID(err),
			}
		}
		return providerOutcome(id, "failed to read the target subnet", err)
	}

	if delegations := virtualnetworks.Delegations(subnet); len(delegations) > 0 {
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityFailure,
			Summary:  fmt.Sprintf("subnet %q is delegated", machine.TargetSubnet),
			Detail:   fmt.Sprintf("delegated to %s; delegated subnets cannot host migrated machines", delegations[0]),
		}
	}

	capacity, err := virtualnetworks.AddressCapacity(subnet)
	if err != nil {
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityFailure,
			Summary:  fmt.Sprintf("cannot size subnet %q", machine.TargetSubnet),
			Detail:   err.Error(),
		}
	}
	used := int64(virtualnetworks.UsedIPConfigurations(subnet))
	free := capacity - azureReservedIPs - used

	switch {
	case free <= 0:
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityFailure,
			Summary:  fmt.Sprintf("subnet %q has no free IP addresses", machine.TargetSubnet),
			Detail:   fmt.Sprintf("capacity %d, %d reserved by Azure, %d in use", capacity, azureReservedIPs, used),
		}
	case free*100 <= capacity*5:
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityWarning,
			Summary:  fmt.Sprintf("subnet %q is close to IP exhaustion", machine.TargetSubnet),
			Detail:   fmt.Sprintf("%d free of %d addresses", free, capacity),
		}
	default:
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityOK,
			Summary:  fmt.Sprintf("subnet %q has %d free IP addresses", machine.TargetSubnet, free),
		}
	}
}
