package frontend

import (
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ir"
	"github.com/mbcrawfo/vibefun-sub003/util"
	"slices"
)

// Declaration desugars a top-level declaration. An ExternalBlock expands to
// one declaration per item, every other declaration to exactly one
func (d *Desugarer) Declaration(decl ast.Declaration) ([]ir.Declaration, error) {
	switch decl := decl.(type) {
	case *ast.LetDecl:
		pattern, err := d.patternOf(decl, decl.Describe(), decl.Pattern)
		if err != nil {
			return nil, err
		}
		if decl.Value == nil {
			return nil, missingIn(decl, decl.Describe())
		}
		value, err := d.Expr(decl.Value)
		if err != nil {
			return nil, err
		}
		return []ir.Declaration{&ir.LetDecl{
			Location:  decl.Location,
			Pattern:   pattern,
			Value:     value,
			Mutable:   decl.Mutable,
			Recursive: decl.Recursive,
			Exported:  decl.Exported,
		}}, nil
	case *ast.LetRecGroupDecl:
		bindings, err := d.letRecBindings(decl, decl.Bindings)
		if err != nil {
			return nil, err
		}
		return []ir.Declaration{&ir.LetRecGroupDecl{Location: decl.Location, Bindings: bindings, Exported: decl.Exported}}, nil
	case *ast.TypeDecl:
		def, err := d.TypeDefinition(decl.Definition)
		if err != nil {
			return nil, err
		}
		return []ir.Declaration{&ir.TypeDecl{
			Location:   decl.Location,
			Name:       decl.Name,
			Params:     slices.Clone(decl.Params),
			Definition: def,
			Exported:   decl.Exported,
		}}, nil
	case *ast.ExternalDecl:
		t, err := d.typeOf(decl, decl.Describe(), decl.Type)
		if err != nil {
			return nil, err
		}
		return []ir.Declaration{&ir.ExternalDecl{
			Location: decl.Location,
			Name:     decl.Name,
			Type:     t,
			JSName:   decl.JSName,
			From:     decl.From,
			Exported: decl.Exported,
		}}, nil
	case *ast.ExternalTypeDecl:
		t, err := d.typeOf(decl, decl.Describe(), decl.Type)
		if err != nil {
			return nil, err
		}
		return []ir.Declaration{&ir.ExternalTypeDecl{Location: decl.Location, Name: decl.Name, Type: t, Exported: decl.Exported}}, nil
	case *ast.ExternalBlock:
		return d.externalBlock(decl)
	case *ast.ImportDecl:
		items := make([]ir.ImportItem, len(decl.Items))
		for i, item := range decl.Items {
			items[i] = ir.ImportItem{Location: item.Location, Name: item.Name, Alias: item.Alias, IsType: item.IsType}
		}
		return []ir.Declaration{&ir.ImportDecl{Location: decl.Location, Items: items, From: decl.From}}, nil
	case nil:
		return nil, missingIn(nil, "declaration")
	default:
		return nil, unknownNode(decl, "declaration", decl)
	}
}

// externalBlock flattens the block, every item taking the From and Exported of the block
func (d *Desugarer) externalBlock(block *ast.ExternalBlock) ([]ir.Declaration, error) {
	decls := make([]ir.Declaration, 0, len(block.Items))
	for _, item := range block.Items {
		switch item := item.(type) {
		case *ast.ExternalValue:
			t, err := d.typeOf(item, "external '"+item.Name+"'", item.Type)
			if err != nil {
				return nil, err
			}
			decls = append(decls, &ir.ExternalDecl{
				Location: item.Location,
				Name:     item.Name,
				Type:     t,
				JSName:   item.JSName,
				From:     block.From,
				Exported: block.Exported,
			})
		case *ast.ExternalType:
			t, err := d.typeOf(item, "external type '"+item.Name+"'", item.Type)
			if err != nil {
				return nil, err
			}
			decls = append(decls, &ir.ExternalTypeDecl{
				Location: item.Location,
				Name:     item.Name,
				Type:     t,
				From:     block.From,
				Exported: block.Exported,
			})
		case nil:
			return nil, missingIn(block, block.Describe())
		default:
			return nil, unknownNode(block, "external item", item)
		}
	}
	return decls, nil
}

// Module desugars every import and declaration of module in source order.
// Imports are collected in Imports and everything else in Declarations,
// wherever the import appeared
func (d *Desugarer) Module(module ast.Module) (ir.Module, error) {
	desugared := ir.Module{Location: module.Location}
	for decl := range util.ConcatIter(slices.Values(module.Imports), slices.Values(module.Declarations)) {
		decls, err := d.Declaration(decl)
		if err != nil {
			return ir.Module{}, err
		}
		bucketDeclarations(&desugared, decls)
	}
	return desugared, nil
}

func bucketDeclarations(module *ir.Module, decls []ir.Declaration) {
	for _, decl := range decls {
		if _, ok := decl.(*ir.ImportDecl); ok {
			module.Imports = append(module.Imports, decl)
		} else {
			module.Declarations = append(module.Declarations, decl)
		}
	}
}
