package expect_test

import (
	"fmt"

	"github.com/buildpacks/expect"
)

// This example shows the basic usage of the package: apply constraints with
// ExpectThat and recover the failure with Capture.
func ExampleExpectThat() {
	failure := expect.Capture(func() {
		expect.ExpectThat([]string{"pack", "lifecycle"}, expect.Exactly(1).StartWith("life"))
		expect.ExpectThat("pack", expect.EqualTo("lifecycle"), "checking %s", "name")
	})

	fmt.Println(failure != nil)
	// Output: true
}
