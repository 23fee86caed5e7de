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

// Run go generate to regenerate this mock.
//go:generate ../../../hack/tools/bin/mockgen -destination servers_mock.go -package mock_servers -source ../servers.go LocationsClient,ResourceGroupsClient,NetworksClient,SKUCatalog,DiscoveryClient,RoleAssignmentsClient
//go:generate /usr/bin/env bash -c "cat ../../../hack/boilerplate/boilerplate.generatego.txt servers_mock.go > _servers_mock.go && mv _servers_mock.go servers_mock.go"
package mock_servers
