// Package vibefun reads surface modules serialised as YAML and runs them through the frontend
package vibefun

import (
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ir"
	"github.com/mbcrawfo/vibefun-sub003/internal/log"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"log/slog"
	"os"
)

var logger = slog.New(ir.IRSlogHandler(log.DefaultLogger.Handler())).With("section", "load")

// LoadModule decodes the YAML document data into a surface module.
// file names the module in locations, unless the document sets its own `file`
func LoadModule(data []byte, file string) (ast.Module, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return ast.Module{}, errors.Wrapf(err, "parsing %s", file)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return ast.Module{}, errors.Errorf("%s: empty document", file)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return ast.Module{}, errors.Errorf("%s: module must be a mapping", file)
	}

	d := &decoder{file: file}
	if named := (node{Node: root}).optStr("file"); named != "" {
		d.file = named
	}
	n, err := d.enter(root, "module", ast.Location{File: d.file})
	if err != nil {
		return ast.Module{}, err
	}
	module := ast.Module{Location: n.loc}
	if module.Imports, err = decodeList(d, n, "imports", d.declaration); err != nil {
		return ast.Module{}, err
	}
	if module.Declarations, err = decodeList(d, n, "declarations", d.declaration); err != nil {
		return ast.Module{}, err
	}
	logger.Debug("loaded module", "file", d.file, "imports", len(module.Imports), "declarations", len(module.Declarations))
	return module, nil
}

// LoadModuleFile reads and decodes the module at path
func LoadModuleFile(path string) (ast.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ast.Module{}, errors.Wrap(err, "reading module")
	}
	return LoadModule(data, path)
}

func (d *decoder) declaration(n node) (ast.Declaration, error) {
	kind, err := n.kind()
	if err != nil {
		return nil, err
	}
	exported, err := n.flag("exported")
	if err != nil {
		return nil, err
	}

	switch kind {
	case "let":
		decl := &ast.LetDecl{Location: n.loc, Exported: exported}
		if decl.Pattern, err = d.requiredPattern(n, "pattern"); err != nil {
			return nil, err
		}
		value, err := d.required(n, "value")
		if err != nil {
			return nil, err
		}
		if decl.Value, err = d.expr(value); err != nil {
			return nil, err
		}
		if decl.Mutable, err = n.flag("mutable"); err != nil {
			return nil, err
		}
		if decl.Recursive, err = n.flag("recursive"); err != nil {
			return nil, err
		}
		return decl, nil
	case "letrec":
		bindings, err := decodeList(d, n, "bindings", d.letRecBinding)
		if err != nil {
			return nil, err
		}
		return &ast.LetRecGroupDecl{Location: n.loc, Bindings: bindings, Exported: exported}, nil
	case "type":
		decl := &ast.TypeDecl{Location: n.loc, Exported: exported}
		if decl.Name, err = n.str("name"); err != nil {
			return nil, err
		}
		if decl.Params, err = n.strings("params"); err != nil {
			return nil, err
		}
		definition, err := d.required(n, "definition")
		if err != nil {
			return nil, err
		}
		if decl.Definition, err = d.typeDefinition(definition); err != nil {
			return nil, err
		}
		return decl, nil
	case "external":
		decl := &ast.ExternalDecl{Location: n.loc, Exported: exported, From: n.optStr("from")}
		if decl.Name, err = n.str("name"); err != nil {
			return nil, err
		}
		if decl.Type, err = d.requiredType(n, "type"); err != nil {
			return nil, err
		}
		if decl.JSName, err = n.str("jsName"); err != nil {
			return nil, err
		}
		return decl, nil
	case "external-type":
		decl := &ast.ExternalTypeDecl{Location: n.loc, Exported: exported}
		if decl.Name, err = n.str("name"); err != nil {
			return nil, err
		}
		if decl.Type, err = d.requiredType(n, "type"); err != nil {
			return nil, err
		}
		return decl, nil
	case "external-block":
		items, err := decodeList(d, n, "items", d.externalItem)
		if err != nil {
			return nil, err
		}
		return &ast.ExternalBlock{Location: n.loc, Items: items, From: n.optStr("from"), Exported: exported}, nil
	case "import":
		from, err := n.str("from")
		if err != nil {
			return nil, err
		}
		items, err := decodeList(d, n, "items", d.importItem)
		if err != nil {
			return nil, err
		}
		return &ast.ImportDecl{Location: n.loc, Items: items, From: from}, nil
	default:
		return nil, n.errorf("unknown declaration kind %q", kind)
	}
}

func (d *decoder) externalItem(n node) (ast.ExternalItem, error) {
	kind, err := n.kind()
	if err != nil {
		return nil, err
	}
	name, err := n.str("name")
	if err != nil {
		return nil, err
	}
	t, err := d.requiredType(n, "type")
	if err != nil {
		return nil, err
	}
	switch kind {
	case "value":
		jsName, err := n.str("jsName")
		if err != nil {
			return nil, err
		}
		return &ast.ExternalValue{Location: n.loc, Name: name, Type: t, JSName: jsName}, nil
	case "type":
		return &ast.ExternalType{Location: n.loc, Name: name, Type: t}, nil
	default:
		return nil, n.errorf("unknown external item kind %q", kind)
	}
}

// importItem decodes `{name: a, alias: b, type: true}`, or the scalar shorthand `a`
func (d *decoder) importItem(n node) (ast.ImportItem, error) {
	if n.isScalar() {
		return ast.ImportItem{Location: n.loc, Name: n.Value}, nil
	}
	name, err := n.str("name")
	if err != nil {
		return ast.ImportItem{}, err
	}
	isType, err := n.flag("type")
	if err != nil {
		return ast.ImportItem{}, err
	}
	return ast.ImportItem{Location: n.loc, Name: name, Alias: n.optStr("alias"), IsType: isType}, nil
}
