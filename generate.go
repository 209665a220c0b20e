package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gertd/go-pluralize"
	"github.com/iancoleman/strcase"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/imports"
	"k8s.io/klog/v2"

	"github.com/scritchley/seqgen/internal/template"
)

const (
	genericIdentName = "T__"
	sliceIdentName   = genericIdentName + "Slice"
	marker           = "@seq"
	header           = "// Code generated by seqgen. DO NOT EDIT.\n\n"
)

// target is a type declaration carrying an @seq marker.
type target struct {
	pkg    string
	typ    string
	plural bool
	pos    token.Position
}

// Run generates a file for every marked type in o.Dir.
func Run(o *Options) error {
	targets, err := scan(o.Dir, o.Suffix)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		klog.InfoS("No @seq markers found", "dir", o.Dir)
		return nil
	}
	g := newGenerator(o)
	for _, t := range targets {
		if err := g.generate(t); err != nil {
			return err
		}
	}
	return nil
}

// sourceFilter skips tests and files seqgen produced itself.
func sourceFilter(suffix string) func(fs.FileInfo) bool {
	return func(fi fs.FileInfo) bool {
		name := fi.Name()
		return !strings.HasSuffix(name, "_test.go") && !strings.HasSuffix(name, suffix+".go")
	}
}

func scan(dir, suffix string) ([]target, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, sourceFilter(suffix), parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", dir, err)
	}
	var targets []target
	for _, name := range slices.Sorted(maps.Keys(pkgs)) {
		files := pkgs[name].Files
		for _, filename := range slices.Sorted(maps.Keys(files)) {
			found, err := scanFile(fset, name, files[filename])
			if err != nil {
				return nil, err
			}
			targets = append(targets, found...)
		}
	}
	return targets, nil
}

func scanFile(fset *token.FileSet, pkg string, f *ast.File) ([]target, error) {
	used := make(map[*ast.Comment]bool)
	var targets []target
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			doc := ts.Doc
			if doc == nil && !gd.Lparen.IsValid() {
				doc = gd.Doc
			}
			c, args, ok := findMarker(doc)
			if !ok {
				continue
			}
			used[c] = true

			t := target{pkg: pkg, typ: ts.Name.Name, pos: fset.Position(ts.Pos())}
			if ts.TypeParams != nil {
				return nil, fmt.Errorf("%s: %s: generic types are not supported", t.pos, t.typ)
			}
			for _, arg := range args {
				switch arg {
				case "plural":
					t.plural = true
				default:
					return nil, fmt.Errorf("%s: %s: unknown %s option %q", t.pos, t.typ, marker, arg)
				}
			}
			targets = append(targets, t)
		}
	}
	for _, cg := range f.Comments {
		for _, c := range cg.List {
			if _, ok := markerArgs(c); ok && !used[c] {
				return nil, fmt.Errorf("%s: %s marker is not attached to a type declaration", fset.Position(c.Pos()), marker)
			}
		}
	}
	return targets, nil
}

func findMarker(doc *ast.CommentGroup) (*ast.Comment, []string, bool) {
	if doc == nil {
		return nil, nil, false
	}
	for _, c := range doc.List {
		if args, ok := markerArgs(c); ok {
			return c, args, true
		}
	}
	return nil, nil, false
}

// markerArgs reports whether c is a "// @seq [args...]" line.
func markerArgs(c *ast.Comment) ([]string, bool) {
	if !strings.HasPrefix(c.Text, "//") {
		return nil, false
	}
	fields := strings.Fields(strings.TrimPrefix(c.Text, "//"))
	if len(fields) == 0 || fields[0] != marker {
		return nil, false
	}
	return fields[1:], true
}

type generator struct {
	opts   *Options
	plural *pluralize.Client
}

func newGenerator(o *Options) *generator {
	return &generator{opts: o, plural: pluralize.NewClient()}
}

func (g *generator) sliceName(t target) string {
	if !g.opts.Plural && !t.plural {
		return t.typ + "Slice"
	}
	name := g.plural.Plural(t.typ)
	if name == t.typ {
		klog.V(1).InfoS("Plural matches the type name, falling back to Slice suffix", "type", t.typ)
		return t.typ + "Slice"
	}
	return name
}

func (g *generator) filename(t target) string {
	return strcase.ToSnake(t.typ) + g.opts.Suffix + ".go"
}

func (g *generator) generate(t target) error {
	filename := g.filename(t)
	src, err := render(filename, t.pkg, t.typ, g.sliceName(t))
	if err != nil {
		return fmt.Errorf("%s: generate %s: %w", t.pos, t.typ, err)
	}
	if g.opts.DryRun {
		_, err := fmt.Fprintf(g.opts.Out, "// %s\n%s", filename, src)
		return err
	}
	path := filepath.Join(g.opts.Dir, filename)
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	klog.V(1).InfoS("Generated", "type", t.typ, "file", path)
	return nil
}

func replaceIdent(r *strings.Replacer) astutil.ApplyFunc {
	return func(c *astutil.Cursor) bool {
		if id, ok := c.Node().(*ast.Ident); ok {
			id.Name = r.Replace(id.Name)
		}
		return true
	}
}

// render instantiates the template for typ in package pkg.
func render(filename, pkg, typ, sliceName string) ([]byte, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "slice.go", template.Source, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	r := strings.NewReplacer(sliceIdentName, sliceName, genericIdentName, typ)
	astutil.Apply(file, replaceIdent(r), nil)
	for _, cg := range file.Comments {
		for _, c := range cg.List {
			c.Text = r.Replace(c.Text)
		}
	}
	file.Name.Name = pkg

	var buf bytes.Buffer
	buf.WriteString(header)
	if err := printer.Fprint(&buf, fset, file); err != nil {
		return nil, fmt.Errorf("print: %w", err)
	}
	out, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return out, nil
}
