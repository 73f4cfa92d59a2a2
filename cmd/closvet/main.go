// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Closvet reports misuse of clos closures that the compiler accepts:
// operations that capture local variables, and once closures called after
// they were consumed.
//
// Usage:
//
//	closvet [-capturefree.allow-params] [packages]
//
// It can also run as a vet tool:
//
//	go vet -vettool=$(which closvet) ./...
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"code.hybscloud.com/clos/passes/capturefree"
	"code.hybscloud.com/clos/passes/oncecall"
)

func main() {
	multichecker.Main(
		capturefree.Analyzer,
		oncecall.Analyzer,
	)
}
