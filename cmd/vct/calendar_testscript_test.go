package main

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/vctasks/vct/internal/testsupport"
)

func TestCalendarScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/calendar",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
	})
}
