// SPDX-License-Identifier: MIT

// Command xform reads homogeneous transform records and factors, composes,
// inverts or re-bases them.
//
//	xform decompose -f pose.yaml
//	xform compose --format json < parts.yaml
//	xform basis --change-basis -f frames.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
