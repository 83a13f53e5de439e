// Package gen turns localization catalogs into a type-safe source file.
//
// # Architecture
//
// The pipeline runs in one direction:
//
//	catalogs (*.xcstrings)
//	        ↓  load.Discover / load.LoadKeys
//	   []*Table (sorted, deduplicated keys)
//	        ↓  Sections (grouping, Identifier, Namer)
//	   *Document
//	        ↓  Target.Render
//	   []byte
//	        ↓  WriteFile (atomic)
//	   Core/Localization/String+Localization.swift
//
// # Key Types
//
//   - Config: generator configuration, built with functional options
//   - Table: one catalog's sorted keys
//   - Section / Entry: emission order and identifiers of a table
//   - Document: render input for a Target
//   - Target: an output language (see the swift and golang packages)
//   - Generator: runs the pipeline for one Config
//
// # Identifiers
//
// Keys become lower camel case identifiers: the first '_'-separated segment
// is kept, following segments are title cased. Collisions inside a table
// are numbered in key order:
//
//	item-one -> itemOne
//	item_one -> itemOne1
//
// # Error Handling
//
//   - ConfigError: invalid options or config files
//   - GenerationError: a target failed to render
//   - WriteError: the output could not be written
//
// Catalog and discovery errors live in the load package.
//
// # Configuration
//
//	cfg, err := gen.NewConfig(
//	    gen.WithRoot("./example"),
//	    gen.WithTable("Auth", gen.TableConfig{GroupByPrefix: true}),
//	)
//	g, err := gen.NewGenerator(cfg)
//	res, err := g.Generate(ctx)
package gen
