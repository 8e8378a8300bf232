package cli

import (
	"flag"
	"testing"

	"github.com/google/go-cmdtest"

	"github.com/vipcxj/ranges/cmd"
	"github.com/vipcxj/ranges/internal/clitest"
)

var update = flag.Bool("update", false, "update test files with results")

func TestCLI(t *testing.T) {
	ts, err := cmdtest.Read("testdata")
	if err != nil {
		t.Fatal(err)
	}
	ts.Commands["ranges"] = cmdtest.InProcessProgram("ranges", cmd.Execute)
	ts.Run(t, *update)
}

func TestCLIStreams(t *testing.T) {
	ts, err := clitest.Read("testdata")
	if err != nil {
		t.Fatal(err)
	}
	ts.Register("ranges", cmd.Execute)
	ts.Run(t, *update)
}
