// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package code

import "strings"

type MasterClass struct { // want "Use of non-inclusive word 'MasterClass' detected. Try leader, primary, parent"
	slaveCount int // want "'slaveCount' detected. Try follower, replica"
	Name       string
}

type MasterBill struct{}

type MasterDegree[M any] struct{ value M }

type Replicator interface {
	SyncSlave() error // want "'SyncSlave' detected"
}

const maxSlaves = 3 // want "'maxSlaves' detected"

var whitelist = map[string]bool{} // want "'whitelist' detected. Try allowlist"

// master_function returns the master copy.
func master_function(_master_variable string) (blacklisted bool) { // want "'master_function' detected" "'master_function returns the master copy.' detected" "'_master_variable' detected" "'blacklisted' detected. Try denylist, blocklist"
	copy := "master string" // want "'master string' detected. Try leader, primary, parent"

	sanityCheck := strings.ToUpper(copy) // want "Use of non-inclusive word 'sanityCheck' detected$"

	x := struct{ slave string }{} // want "'slave' detected"

	x.slave = sanityCheck // want "'slave' detected"

	for _, masterKey := range []string{"a"} { // want "'masterKey' detected"
		_ = masterKey
	}

	manHours := 8 // want "'manHours' detected. Try work hours"
	manHours *= 2
	_ = manHours

	return x.slave == ""
}

// Receivers and parameter types are references, not definitions.
func (m MasterClass) String() string {
	return m.Name
}
