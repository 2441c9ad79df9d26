package cmd

import "testing"

func TestBase(t *testing.T) {
	t.Run("hex to decimal", func(t *testing.T) {
		env := newTestEnv(t)
		env.equals(env.run("base", "ff", "16", "10"), "255")
	})

	t.Run("decimal to binary", func(t *testing.T) {
		env := newTestEnv(t)
		env.equals(env.run("base", "255", "10", "2"), "11111111")
	})

	t.Run("beyond 64 bits", func(t *testing.T) {
		env := newTestEnv(t)
		env.equals(env.run("base", "18446744073709551616", "10", "16"), "10000000000000000")
	})

	t.Run("invalid digits", func(t *testing.T) {
		env := newTestEnv(t)
		if _, err := env.runErr("base", "2", "2", "10"); err == nil {
			t.Fatal("digit outside base should fail")
		}
	})

	t.Run("non-numeric base", func(t *testing.T) {
		env := newTestEnv(t)
		if _, err := env.runErr("base", "ff", "sixteen", "10"); err == nil {
			t.Fatal("non-numeric base should fail")
		}
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("base", "ff", "16", "10", "-o", "json")
		env.contains(out, `"output":"255"`)
	})
}
