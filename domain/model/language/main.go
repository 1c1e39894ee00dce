package language

import "strings"

// Language is the canonical (lowercase) name of a supported solution language.
type Language string

const (
	Rust   Language = "rust"
	CSharp Language = "csharp"
	Java   Language = "java"
	Python Language = "python"
)

// StarterFile is one file written when a project is scaffolded.
type StarterFile struct {
	Path    string
	Content string
}

// Info carries the per-language toolchain knowledge: what to scaffold and
// which commands build and run a solution inside its project directory.
type Info struct {
	Name     Language
	Starters []StarterFile
	RunSteps [][]string
}

var languages map[Language]Info

func init() {
	languages = map[Language]Info{
		Rust: {
			Name: Rust,
			Starters: []StarterFile{
				{
					Path: "Cargo.toml",
					Content: `[package]
name = "solution"
version = "0.1.0"
edition = "2021"
`,
				},
				{
					Path: "src/main.rs",
					Content: `fn main() {
    let input = std::fs::read_to_string("input.txt").expect("input.txt");

    println!("part 1: {}", input.lines().count());
    println!("part 2: unsolved");
}
`,
				},
			},
			RunSteps: [][]string{{"cargo", "run", "--release"}},
		},
		CSharp: {
			Name: CSharp,
			Starters: []StarterFile{
				{
					Path: "solution.csproj",
					Content: `<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <OutputType>Exe</OutputType>
    <TargetFramework>net8.0</TargetFramework>
    <Nullable>enable</Nullable>
  </PropertyGroup>
</Project>
`,
				},
				{
					Path: "Program.cs",
					Content: `var input = File.ReadAllLines("input.txt");

Console.WriteLine($"part 1: {input.Length}");
Console.WriteLine("part 2: unsolved");
`,
				},
			},
			RunSteps: [][]string{{"dotnet", "run"}},
		},
		Java: {
			Name: Java,
			Starters: []StarterFile{
				{
					Path: "Main.java",
					Content: `import java.nio.file.Files;
import java.nio.file.Path;
import java.util.List;

public class Main {
    public static void main(String[] args) throws Exception {
        List<String> input = Files.readAllLines(Path.of("input.txt"));

        System.out.println("part 1: " + input.size());
        System.out.println("part 2: unsolved");
    }
}
`,
				},
			},
			RunSteps: [][]string{{"javac", "Main.java"}, {"java", "-cp", ".", "Main"}},
		},
		Python: {
			Name: Python,
			Starters: []StarterFile{
				{
					Path: "main.py",
					Content: `with open("input.txt") as f:
    lines = f.read().splitlines()

print("part 1:", len(lines))
print("part 2: unsolved")
`,
				},
			},
			RunSteps: [][]string{{"python3", "main.py"}},
		},
	}
}

// All returns the supported languages in their fixed declaration order.
// The order is significant: it drives the alternation generated for the
// extraction pattern.
func All() []Language {
	return []Language{Rust, CSharp, Java, Python}
}

// Parse resolves a user-supplied name case-insensitively.
func Parse(s string) (Language, bool) {
	l := Language(strings.ToLower(s))
	if _, ok := languages[l]; !ok {
		return "", false
	}
	return l, true
}

func Get(l Language) (Info, bool) {
	info, ok := languages[l]
	return info, ok
}

func (l Language) String() string {
	return string(l)
}
