package cmdspec_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/mwantia/cmdspec"
	"github.com/mwantia/cmdspec/data"
)

func TestCompile_Metadata(t *testing.T) {
	doc := data.NewDocument().
		Set("name", "tool").
		Set("description", "A tool").
		Set("version", "1.2.3").
		Set("author", "someone")

	spec, err := cmdspec.Compile(doc)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if spec.Name != "tool" {
		t.Errorf("Expected name 'tool', got '%s'", spec.Name)
	}
	if spec.Version != "1.2.3" {
		t.Errorf("Expected version '1.2.3', got '%s'", spec.Version)
	}
	if spec.SubcommandKey != "" {
		t.Errorf("Expected empty subcommand key on root, got '%s'", spec.SubcommandKey)
	}
	if spec.AllowUnknownArgs {
		t.Error("Expected allow_unknown_args to default to false")
	}
	if !spec.ParseDoubleDash {
		t.Error("Expected parse_double_dash to default to true")
	}
}

func TestCompile_BooleanFields(t *testing.T) {
	doc := data.NewDocument().
		Set("allow_unknown_args", true).
		Set("parse_double_dash", false)

	spec, err := cmdspec.Compile(doc)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if !spec.AllowUnknownArgs {
		t.Error("Expected allow_unknown_args true")
	}
	if spec.ParseDoubleDash {
		t.Error("Expected parse_double_dash false")
	}

	if _, err := cmdspec.Compile(data.NewDocument().Set("allow_unknown_args", "yes")); err == nil {
		t.Error("Expected error for non-boolean allow_unknown_args")
	}
}

func TestCompile_InvalidName(t *testing.T) {
	for _, name := range []string{"-tool", "my tool", "a\tb"} {
		if _, err := cmdspec.Compile(data.NewDocument().Set("name", name)); err == nil {
			t.Errorf("Expected error for command name %q", name)
		}
	}
}

func TestCompile_SummaryDerivation(t *testing.T) {
	about := "First paragraph\nstill first.\n\nSecond paragraph."

	t.Run("derived-from-about", func(tst *testing.T) {
		spec, err := cmdspec.Compile(data.NewDocument().Set("about", about))
		if err != nil {
			tst.Fatalf("Compile failed: %v", err)
		}

		expected := "First paragraph\nstill first."
		if spec.Summary != expected {
			tst.Errorf("Expected summary %q, got %q", expected, spec.Summary)
		}
	})

	t.Run("explicit-wins", func(tst *testing.T) {
		doc := data.NewDocument().
			Set("about", about).
			Set("summary", "Short form")

		spec, err := cmdspec.Compile(doc)
		if err != nil {
			tst.Fatalf("Compile failed: %v", err)
		}

		if spec.Summary != "Short form" {
			tst.Errorf("Expected explicit summary, got %q", spec.Summary)
		}
	})

	t.Run("absent-without-about", func(tst *testing.T) {
		spec, err := cmdspec.Compile(data.NewDocument())
		if err != nil {
			tst.Fatalf("Compile failed: %v", err)
		}

		if spec.Summary != "" {
			tst.Errorf("Expected absent summary, got %q", spec.Summary)
		}
	})

	t.Run("single-paragraph-about", func(tst *testing.T) {
		spec, err := cmdspec.Compile(data.NewDocument().Set("about", "  Only paragraph.  "))
		if err != nil {
			tst.Fatalf("Compile failed: %v", err)
		}

		if spec.Summary != "Only paragraph." {
			tst.Errorf("Expected trimmed summary, got %q", spec.Summary)
		}
	})
}

func TestCompile_ArgumentOrdering(t *testing.T) {
	t.Run("required-before-optional", func(tst *testing.T) {
		doc := data.NewDocument().Set("args", data.NewDocument().
			Set("a", data.NewDocument().Set("required", true)).
			Set("b", data.NewDocument().Set("required", false)))

		spec, err := cmdspec.Compile(doc)
		if err != nil {
			tst.Fatalf("Compile failed: %v", err)
		}

		if len(spec.Args) != 2 || spec.Args[0].Name != "a" || spec.Args[1].Name != "b" {
			tst.Errorf("Expected args [a b] in order, got %v", spec.Args)
		}
	})

	t.Run("required-after-optional", func(tst *testing.T) {
		doc := data.NewDocument().Set("args", data.NewDocument().
			Set("a", data.NewDocument().Set("required", false)).
			Set("b", data.NewDocument().Set("required", true)))

		_, err := cmdspec.Compile(doc)
		if err == nil {
			tst.Fatal("Expected ordering error")
		}
		if !strings.Contains(err.Error(), "'b'") || !strings.Contains(err.Error(), "'a'") {
			tst.Errorf("Expected error naming both arguments, got: %v", err)
		}
	})

	t.Run("all-optional", func(tst *testing.T) {
		doc := data.NewDocument().Set("args", data.NewDocument().
			Set("a", nil).
			Set("b", nil).
			Set("c", nil))

		if _, err := cmdspec.Compile(doc); err != nil {
			tst.Fatalf("Compile failed: %v", err)
		}
	})
}

func TestCompile_NameConflicts(t *testing.T) {
	t.Run("short-across-flag-and-option", func(tst *testing.T) {
		doc := data.NewDocument().
			Set("flags", data.NewDocument().
				Set("a", data.NewDocument().Set("short", "x"))).
			Set("options", data.NewDocument().
				Set("b", data.NewDocument().Set("short", "x")))

		_, err := cmdspec.Compile(doc)
		if err == nil {
			tst.Fatal("Expected short name conflict")
		}
		if !strings.Contains(err.Error(), "short") || !strings.Contains(err.Error(), "'x'") {
			tst.Errorf("Expected short conflict naming 'x', got: %v", err)
		}
	})

	t.Run("long-across-flags", func(tst *testing.T) {
		doc := data.NewDocument().Set("flags", data.NewDocument().
			Set("a", data.NewDocument().Set("long", "verbose")).
			Set("b", data.NewDocument().Set("long", "verbose")))

		_, err := cmdspec.Compile(doc)
		if err == nil {
			tst.Fatal("Expected long name conflict")
		}
		if !strings.Contains(err.Error(), "long") || !strings.Contains(err.Error(), "'verbose'") {
			tst.Errorf("Expected long conflict naming 'verbose', got: %v", err)
		}
	})

	t.Run("absent-values-never-conflict", func(tst *testing.T) {
		doc := data.NewDocument().
			Set("flags", data.NewDocument().
				Set("a", nil).
				Set("b", nil)).
			Set("options", data.NewDocument().
				Set("c", nil))

		if _, err := cmdspec.Compile(doc); err != nil {
			tst.Fatalf("Compile failed: %v", err)
		}
	})

	t.Run("distinct-values", func(tst *testing.T) {
		doc := data.NewDocument().
			Set("flags", data.NewDocument().
				Set("a", data.NewDocument().Set("short", "x").Set("long", "all")).
				Set("b", data.NewDocument().Set("short", "y").Set("long", "brief")))

		if _, err := cmdspec.Compile(doc); err != nil {
			tst.Fatalf("Compile failed: %v", err)
		}
	})
}

func TestCompile_DuplicateKeys(t *testing.T) {
	t.Run("top-level", func(tst *testing.T) {
		doc := data.NewDocument().
			Set("name", "tool").
			Set("name", "other")

		_, err := cmdspec.Compile(doc)
		if err == nil || !strings.Contains(err.Error(), "config") {
			tst.Errorf("Expected structural error naming config, got: %v", err)
		}
	})

	for _, list := range []string{"args", "flags", "options", "subcommands"} {
		t.Run(list, func(tst *testing.T) {
			doc := data.NewDocument().Set(list, data.NewDocument().
				Set("dup", data.NewDocument()).
				Set("dup", data.NewDocument()))

			_, err := cmdspec.Compile(doc)
			if err == nil || !strings.Contains(err.Error(), "'"+list+"'") {
				tst.Errorf("Expected structural error naming %s, got: %v", list, err)
			}
		})
	}
}

func TestCompile_ListNotMapping(t *testing.T) {
	for _, list := range []string{"args", "flags", "options", "subcommands"} {
		t.Run(list, func(tst *testing.T) {
			_, err := cmdspec.Compile(data.NewDocument().Set(list, "nope"))
			if err == nil || !strings.Contains(err.Error(), "'"+list+"'") {
				tst.Errorf("Expected mapping error naming %s, got: %v", list, err)
			}
		})
	}
}

func TestCompile_GlobalPropagation(t *testing.T) {
	doc := data.NewDocument().
		Set("name", "tool").
		Set("flags", data.NewDocument().
			Set("verbose", data.NewDocument().Set("short", "v").Set("global", true)).
			Set("local", data.NewDocument().Set("short", "l"))).
		Set("options", data.NewDocument().
			Set("config", data.NewDocument().Set("long", "config").Set("global", true))).
		Set("subcommands", data.NewDocument().
			Set("build", data.NewDocument().
				Set("flags", data.NewDocument().
					Set("fast", data.NewDocument().Set("short", "f"))).
				Set("subcommands", data.NewDocument().
					Set("deep", data.NewDocument()))))

	spec, err := cmdspec.Compile(doc)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if len(spec.Subcommands) != 1 {
		t.Fatalf("Expected one subcommand, got %d", len(spec.Subcommands))
	}
	build := spec.Subcommands[0]

	// Own flag first, inherited global behind it, hidden.
	if len(build.Flags) != 2 {
		t.Fatalf("Expected 2 flags on build, got %d", len(build.Flags))
	}
	if build.Flags[0].Name != "fast" {
		t.Errorf("Expected locally declared flag first, got '%s'", build.Flags[0].Name)
	}
	inherited := build.Flags[1]
	if inherited.Name != "verbose" || inherited.Short != "v" {
		t.Errorf("Expected inherited verbose flag with short 'v', got %+v", inherited)
	}
	if !inherited.Hide {
		t.Error("Expected inherited global flag to be hidden")
	}

	if len(build.Options) != 1 || build.Options[0].Name != "config" || !build.Options[0].Hide {
		t.Errorf("Expected hidden inherited config option, got %+v", build.Options)
	}

	// The non-global flag must not propagate.
	for _, flag := range build.Flags {
		if flag.Name == "local" {
			t.Error("Non-global flag leaked into subcommand")
		}
	}

	// Globals reach every depth.
	if len(build.Subcommands) != 1 {
		t.Fatalf("Expected one nested subcommand, got %d", len(build.Subcommands))
	}
	deep := build.Subcommands[0]
	if len(deep.Flags) != 1 || deep.Flags[0].Name != "verbose" || !deep.Flags[0].Hide {
		t.Errorf("Expected hidden verbose flag at depth 2, got %+v", deep.Flags)
	}
	if len(deep.Options) != 1 || deep.Options[0].Name != "config" {
		t.Errorf("Expected inherited config option at depth 2, got %+v", deep.Options)
	}

	// The original declarations stay visible at their own level.
	if spec.Flags[0].Hide {
		t.Error("Root declaration must not be hidden by accumulator copies")
	}
}

func TestCompile_SubcommandNames(t *testing.T) {
	doc := data.NewDocument().Set("subcommands", data.NewDocument().
		Set("build", data.NewDocument()).
		Set("deploy", data.NewDocument().Set("name", "ship")))

	spec, err := cmdspec.Compile(doc)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if spec.Subcommands[0].Name != "build" {
		t.Errorf("Expected name defaulted from key 'build', got '%s'", spec.Subcommands[0].Name)
	}
	if spec.Subcommands[0].SubcommandKey != "build" {
		t.Errorf("Expected subcommand key 'build', got '%s'", spec.Subcommands[0].SubcommandKey)
	}
	if spec.Subcommands[1].Name != "ship" {
		t.Errorf("Expected explicit name 'ship', got '%s'", spec.Subcommands[1].Name)
	}
	if spec.Subcommands[1].SubcommandKey != "deploy" {
		t.Errorf("Expected subcommand key 'deploy', got '%s'", spec.Subcommands[1].SubcommandKey)
	}
}

func TestCompile_SubcommandErrorPath(t *testing.T) {
	doc := data.NewDocument().Set("subcommands", data.NewDocument().
		Set("build", data.NewDocument().
			Set("subcommands", data.NewDocument().
				Set("image", data.NewDocument().
					Set("args", data.NewDocument().
						Set("a", data.NewDocument().Set("required", false)).
						Set("b", data.NewDocument().Set("required", true)))))))

	_, err := cmdspec.Compile(doc)
	if err == nil {
		t.Fatal("Expected nested ordering error")
	}

	text := err.Error()
	if !strings.Contains(text, "subcommand 'build'") || !strings.Contains(text, "subcommand 'image'") {
		t.Errorf("Expected error wrapped with full subcommand path, got: %v", err)
	}
}

func TestCompile_SubcommandNotMapping(t *testing.T) {
	doc := data.NewDocument().Set("subcommands", data.NewDocument().
		Set("build", "nope"))

	_, err := cmdspec.Compile(doc)
	if err == nil || !strings.Contains(err.Error(), "subcommand 'build'") {
		t.Errorf("Expected wrapped structural error, got: %v", err)
	}
}

func TestCompile_DeclarationOrder(t *testing.T) {
	doc := data.NewDocument().
		Set("args", data.NewDocument().
			Set("first", data.NewDocument().Set("required", true)).
			Set("second", data.NewDocument().Set("required", true)).
			Set("third", nil)).
		Set("subcommands", data.NewDocument().
			Set("one", data.NewDocument()).
			Set("two", data.NewDocument()).
			Set("three", data.NewDocument()))

	spec, err := cmdspec.Compile(doc)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	argNames := []string{spec.Args[0].Name, spec.Args[1].Name, spec.Args[2].Name}
	if !reflect.DeepEqual(argNames, []string{"first", "second", "third"}) {
		t.Errorf("Arguments out of declaration order: %v", argNames)
	}

	subNames := []string{spec.Subcommands[0].Name, spec.Subcommands[1].Name, spec.Subcommands[2].Name}
	if !reflect.DeepEqual(subNames, []string{"one", "two", "three"}) {
		t.Errorf("Subcommands out of declaration order: %v", subNames)
	}
}

func TestCompile_Idempotent(t *testing.T) {
	doc := data.NewDocument().
		Set("name", "tool").
		Set("about", "First.\n\nSecond.").
		Set("flags", data.NewDocument().
			Set("verbose", data.NewDocument().Set("short", "v").Set("global", true))).
		Set("subcommands", data.NewDocument().
			Set("build", data.NewDocument()))

	first, err := cmdspec.Compile(doc)
	if err != nil {
		t.Fatalf("First compile failed: %v", err)
	}
	second, err := cmdspec.Compile(doc)
	if err != nil {
		t.Fatalf("Second compile failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected structurally identical trees from repeated compiles")
	}
}

// A global merged into a subcommand may collide with a locally declared
// short or long name without an error: validation only covers the level's
// own declarations. This pins the permissive behavior down.
func TestCompile_MergedGlobalCollisionAllowed(t *testing.T) {
	doc := data.NewDocument().
		Set("flags", data.NewDocument().
			Set("verbose", data.NewDocument().Set("short", "v").Set("global", true))).
		Set("subcommands", data.NewDocument().
			Set("build", data.NewDocument().
				Set("flags", data.NewDocument().
					Set("version", data.NewDocument().Set("short", "v")))))

	spec, err := cmdspec.Compile(doc)
	if err != nil {
		t.Fatalf("Expected merged-global collision to compile, got: %v", err)
	}

	build := spec.Subcommands[0]
	if len(build.Flags) != 2 || build.Flags[0].Short != "v" || build.Flags[1].Short != "v" {
		t.Errorf("Expected both colliding flags present, got %+v", build.Flags)
	}
}

func TestCompile_NilDocument(t *testing.T) {
	if _, err := cmdspec.Compile(nil); err == nil {
		t.Error("Expected error for nil document")
	}
}
