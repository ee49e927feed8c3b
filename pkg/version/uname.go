// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import "sync"

type SystemInfo struct {
	Name      string `json:"name"`
	Node      string `json:"node"`
	Release   string `json:"release"`
	Version   string `json:"version"`
	Machine   string `json:"machine"`
	OS        string `json:"os"`
	Processor string `json:"processor"`
	Cores     int    `json:"cores"`
}

var uname = sync.OnceValues(GetSystemInfo)

// Uname returns the host description printed by "version --build-options".
func Uname() (*SystemInfo, error) {
	return uname()
}
