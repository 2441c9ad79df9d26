package cmd

import "testing"

func TestSplit(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		env := newTestEnv(t)
		env.equals(env.run("split", "a:b:c", ":"), "a\nb\nc")
	})

	t.Run("keeps empty fields", func(t *testing.T) {
		env := newTestEnv(t)
		env.equals(env.run("split", "a::b", ":"), "a\n\nb")
	})

	t.Run("omit empty", func(t *testing.T) {
		env := newTestEnv(t)
		env.equals(env.run("split", "a::b", ":", "--omit-empty"), "a\nb")
	})

	t.Run("empty separator splits characters", func(t *testing.T) {
		env := newTestEnv(t)
		env.equals(env.run("split", "abc", ""), "a\nb\nc")
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("split", "a:b", ":", "-o", "json")
		env.contains(out, `"fields":["a","b"]`)
	})
}
