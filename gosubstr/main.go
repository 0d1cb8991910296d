package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/coregx/coregex"
	"github.com/fatih/color"

	"github.com/mfroeh/gosubstr/substr"
)

var spanColor = color.New(color.FgRed)

var cli struct {
	Needle      string   `arg:"" name:"needle" help:"Snippet (or regex with --mode=regex) to locate in each line"`
	Paths       []string `arg:"" optional:"" name:"path" help:"Paths to search, stdin if none" type:"path"`
	Mode        string   `help:"How to locate the needle" enum:"first,last,prefix,suffix,regex" default:"first"`
	Group       int      `help:"Capture group to select in regex mode" default:"0"`
	Span        string   `help:"Projection applied to the matched span" enum:"match,before,after,and-before,and-after" default:"match"`
	Or          []string `help:"Fallback needles tried in order when the needle does not match"`
	Remove      bool     `help:"Print matching lines with the span removed"`
	ReplaceWith *string  `help:"Print matching lines with the span replaced"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("gosubstr"),
		kong.Description("Locates a substring span in each line of the given files and highlights, removes or replaces it."),
		kong.UsageOnError(),
	)

	pattern, err := buildPattern()
	if err != nil {
		log.Fatalf("failed to build pattern: %v", err)
	}

	if len(cli.Paths) == 0 {
		if err := searchLines(os.Stdin, "", pattern); err != nil {
			log.Fatalf("stdin: %v", err)
		}
		return
	}

	for _, path := range cli.Paths {
		info, err := os.Lstat(path)
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}

		if info.IsDir() {
			err = recursivelySearchDir(path, pattern)
		} else {
			err = searchFile(path, pattern)
		}

		if err != nil {
			log.Fatalf("%v", err)
		}
	}
}

func buildPattern() (substr.Pattern, error) {
	pattern, err := needlePattern(cli.Needle)
	if err != nil {
		return nil, err
	}
	for _, needle := range cli.Or {
		fallback, err := needlePattern(needle)
		if err != nil {
			return nil, err
		}
		pattern = pattern.Or(fallback)
	}

	switch cli.Span {
	case "match":
	case "before":
		pattern = pattern.Before()
	case "after":
		pattern = pattern.After()
	case "and-before":
		pattern = pattern.AndBefore()
	case "and-after":
		pattern = pattern.AndAfter()
	}
	return pattern, nil
}

func needlePattern(needle string) (substr.Pattern, error) {
	switch cli.Mode {
	case "first":
		return substr.First(needle), nil
	case "last":
		return substr.Last(needle), nil
	case "prefix":
		return substr.Prefix(needle), nil
	case "suffix":
		return substr.Suffix(needle), nil
	case "regex":
		if cli.Group < 0 {
			return nil, fmt.Errorf("group cannot be negative: %d", cli.Group)
		}
		re, err := coregex.Compile(needle)
		if err != nil {
			return nil, fmt.Errorf("failed to compile %q: %w", needle, err)
		}
		return substr.RegexpGroup(re, cli.Group), nil
	default:
		panic("unexpected mode " + cli.Mode)
	}
}

func recursivelySearchDir(path string, pattern substr.Pattern) error {
	err := filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		// resolve symlinks
		var info os.FileInfo
		for {
			info, err = os.Stat(path)
			// symlinks may be broken, in that case, just ignore them
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return nil
				}
				return err
			}
			if info.Mode()&fs.ModeSymlink != fs.ModeSymlink {
				break
			}

			path, err = os.Readlink(path)
			if err != nil {
				return err
			}
		}

		// symlink may resolve to a directory, in which case we just ignore it
		if info.IsDir() {
			return nil
		}

		return searchFile(path, pattern)
	})

	return err
}

func searchFile(path string, pattern substr.Pattern) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return searchLines(f, path+":", pattern)
}

func searchLines(r io.Reader, prefix string, pattern substr.Pattern) error {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		span, ok := pattern.In(line)
		if !ok {
			continue
		}

		out := renderLine(line, span)
		fmt.Printf("%s%d:%s\n", prefix, lineno, out)
	}
	return scanner.Err()
}

func renderLine(line string, span substr.Span) string {
	if cli.Remove {
		return span.Remove()
	}
	if cli.ReplaceWith != nil {
		return span.ReplaceWith(*cli.ReplaceWith)
	}

	out := strings.Builder{}
	out.WriteString(span.Before())
	spanColor.Fprint(&out, span.String())
	out.WriteString(span.After())
	return out.String()
}
