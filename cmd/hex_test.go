package cmd

import "testing"

func TestHex(t *testing.T) {
	t.Run("encode", func(t *testing.T) {
		env := newTestEnv(t)
		env.equals(env.run("hex", "hello"), "68656c6c6f")
	})

	t.Run("decode", func(t *testing.T) {
		env := newTestEnv(t)
		env.equals(env.run("hex", "-d", "68656c6c6f"), "hello")
	})

	t.Run("decode invalid", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("hex", "-d", "zz")
		if err == nil {
			t.Fatalf("decoding non-hex succeeded: %s", out)
		}
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("hex", "hi", "-o", "json")
		env.contains(out, `"output":"6869"`)
	})
}
