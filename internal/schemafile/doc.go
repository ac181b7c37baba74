// Package schemafile reads declarative record schemas from YAML.
//
// A schema file names a target package, the imports its field types need and
// a list of records:
//
//	version: "1"
//	package: models
//	imports:
//	  - time
//	  - alias: stdurl
//	    path: net/url
//	records:
//	  - name: Account
//	    fields:
//	      - name: id
//	        type: int64
//	      - name: created_at
//	        type: time.Time
//	        go_name: CreatedAt
//
// Records loaded from a file are declared: the generator emits the record
// struct next to its partial form.
package schemafile
