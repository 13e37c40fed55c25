// objtool is a CLI utility for inspecting and rewriting Wavefront OBJ files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/objfile/internal/config"
	"github.com/Faultbox/objfile/internal/logger"
	"github.com/Faultbox/objfile/pkg/obj"
)

func main() {
	// Global flags come before the subcommand; flag parsing stops at
	// the first non-flag argument.
	config.ParseFlags()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}
	command := flag.Arg(0)
	args := flag.Args()[1:]

	if command == "help" || command == "-h" || command == "--help" {
		printUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	switch command {
	case "info":
		cmdInfo(args)
	case "groups":
		cmdGroups(args)
	case "convert":
		cmdConvert(cfg, args)
	case "extract", "x":
		cmdExtract(cfg, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`objtool - Wavefront OBJ inspection and rewriting utility

Usage:
  objtool [global options] <command> [options]

Global options:
  -config <path>  Use a specific config file
  -debug          Enable debug logging
  -log <path>     Write logs to a file
  -backup         Keep a .bak copy when overwriting files

Commands:
  info <file.obj>                        Show scene statistics
  groups [-faces] <file.obj>             List groups and their sizes
  convert [-o out.obj] <file.obj>        Parse and re-emit canonical text
  extract -object <name> [-o out.obj] <file.obj>
                                         Extract one object into its own file

Examples:
  objtool info model.obj
  objtool groups -faces model.obj
  objtool convert -o clean.obj model.obj
  objtool extract -object Cube -o cube.obj scene.obj`)
}

// mustParse loads an OBJ file or exits with a diagnostic.
func mustParse(path string) *obj.Scene {
	start := time.Now()
	scene, err := obj.ParseFile(path)
	if err != nil {
		logger.Error("load failed", zap.String("file", path), zap.Error(err))
		os.Exit(1)
	}
	logger.Sugar.Debugf("parsed %s in %v", path, time.Since(start))
	return scene
}

// writeScene writes the scene to path, honoring the output settings for
// relative paths and backups.
func writeScene(cfg *config.Config, scene *obj.Scene, path string) {
	if cfg.Output.Directory != "" && !filepath.IsAbs(path) {
		path = filepath.Join(cfg.Output.Directory, path)
	}

	if cfg.Output.Backup {
		if _, err := os.Stat(path); err == nil {
			if err := os.Rename(path, path+".bak"); err != nil {
				logger.Error("backup failed", zap.String("file", path), zap.Error(err))
				os.Exit(1)
			}
			logger.Debug("kept backup", zap.String("file", path+".bak"))
		}
	}

	if err := scene.WriteFile(path); err != nil {
		logger.Error("write failed", zap.String("file", path), zap.Error(err))
		os.Exit(1)
	}
	fmt.Printf("Wrote: %s (%d faces)\n", path, len(scene.Faces))
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool info <file.obj>")
		os.Exit(1)
	}

	scene := mustParse(fs.Arg(0))
	st := scene.Stats()

	fmt.Printf("File:      %s\n", fs.Arg(0))
	fmt.Printf("Vertices:  %d\n", st.Vertices)
	fmt.Printf("Normals:   %d\n", st.Normals)
	fmt.Printf("TexCoords: %d\n", st.TexCoords)
	fmt.Printf("Faces:     %d\n", st.Faces)
	fmt.Printf("Objects:   %d\n", st.Objects)
	fmt.Printf("Groups:    %d\n", st.Groups)

	if st.Vertices > 0 {
		min, max := scene.Bounds()
		fmt.Printf("Bounds:    (%g %g %g) to (%g %g %g)\n",
			min.X(), min.Y(), min.Z(), max.X(), max.Y(), max.Z())
	}

	if st.Objects > 0 {
		fmt.Println()
		fmt.Println("Objects:")
		for i := range scene.Objects {
			o := &scene.Objects[i]
			name := o.Name
			if name == "" {
				name = "(default)"
			}
			fmt.Printf("  %-24s %d faces\n", name, len(o.Primitives))
		}
	}
}

func cmdGroups(args []string) {
	fs := flag.NewFlagSet("groups", flag.ExitOnError)
	showFaces := fs.Bool("faces", false, "List member face indices")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool groups [-faces] <file.obj>")
		os.Exit(1)
	}

	scene := mustParse(fs.Arg(0))
	if len(scene.Groups) == 0 {
		fmt.Println("No groups")
		return
	}

	for i := range scene.Groups {
		g := &scene.Groups[i]
		fmt.Printf("%-24s %d faces\n", g.Name, len(g.Indexes))
		if *showFaces {
			members := make([]int, 0, len(g.Indexes))
			for fi := range g.Indexes {
				members = append(members, fi)
			}
			sort.Ints(members)
			fmt.Printf("  %v\n", members)
		}
	}
}

func cmdConvert(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	out := fs.String("o", "", "Output file (default stdout)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool convert [-o out.obj] <file.obj>")
		os.Exit(1)
	}

	scene := mustParse(fs.Arg(0))

	if *out == "" {
		if err := scene.Write(os.Stdout); err != nil {
			logger.Error("write failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}
	writeScene(cfg, scene, *out)
}

func cmdExtract(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	name := fs.String("object", "", "Name of the object to extract")
	out := fs.String("o", "", "Output file (default stdout)")
	fs.Parse(args)

	if fs.NArg() < 1 || *name == "" {
		fmt.Fprintln(os.Stderr, "Usage: objtool extract -object <name> [-o out.obj] <file.obj>")
		os.Exit(1)
	}

	scene := mustParse(fs.Arg(0))

	sub, err := scene.ExtractObject(*name)
	if err != nil {
		logger.Error("extract failed", zap.String("object", *name), zap.Error(err))
		os.Exit(1)
	}
	logger.Sugar.Debugf("extracted %q: %d faces, %d vertices", *name, len(sub.Faces), len(sub.Vertices))

	if *out == "" {
		if err := sub.Write(os.Stdout); err != nil {
			logger.Error("write failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}
	writeScene(cfg, sub, *out)
}
