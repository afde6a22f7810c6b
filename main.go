// Cimatrix generates the Travis CI build matrix.
//
// Every enabled CMake version is paired with every enabled GCC version and the
// resulting jobs are printed to stdout as .travis.yml.
package main

import (
	"github.com/remotecc/cimatrix/cmd/cimatrix"
)

func main() {
	cimatrix.Execute()
}
