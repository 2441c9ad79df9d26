package cmd

import (
	"strings"
	"testing"
)

func TestHistory(t *testing.T) {
	t.Run("records invocations", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("glob", "docs/*")
		env.run("hex", "hi")

		out := env.run("history")
		env.contains(out, "glob:translate")
		env.contains(out, "hex:encode")
		env.contains(out, "docs/*")
	})

	t.Run("newest first with limit", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("glob", "first/*")
		env.run("glob", "second/*")

		out := env.run("history", "-n", "1")
		env.contains(out, "second/*")
		if strings.Contains(out, "first/*") {
			t.Errorf("history -n 1 showed more than one entry:\n%s", out)
		}
	})

	t.Run("failures are recorded", func(t *testing.T) {
		env := newTestEnv(t)
		_, _ = env.runErr("hex", "-d", "zz")

		out := env.run("history")
		env.contains(out, "hex:decode")
		env.contains(out, "n")
	})

	t.Run("empty history", func(t *testing.T) {
		env := newTestEnv(t)
		env.equals(env.run("history"), "no history")
	})

	t.Run("disabled by config", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("config", "history.enabled", "false")
		env.run("glob", "docs/*")

		out := env.run("history")
		if strings.Contains(out, "glob:translate") {
			t.Errorf("history recorded while disabled:\n%s", out)
		}
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("glob", "docs/*")
		out := env.run("history", "-o", "json")
		env.contains(out, `"Source":"glob:translate"`)
	})
}
