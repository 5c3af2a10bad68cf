// Package config loads record mapper configuration files.
//
// A configuration file describes per-type options in YAML:
//
//	version: "1"
//	defaults:
//	  flavor: generic
//	  convention: camelCase
//	types:
//	  - name: store.Order
//	    flavor: graph
//	    convention: SCREAMING_CASE
//	    fields:
//	      ID:
//	        alias: order_id
//	      Note:
//	        optional: true
//	        default: '"none"'
//	    ignore:
//	      - Internal
//
// Process level defaults come from the environment, optionally loaded from a
// .env file.
package config
