// Package config loads page defaults from YAML. Documents are decoded
// through yaml.Node so the order of metas, attributes and links in the file
// is the order they are rendered in. An optional top-level `sonata_seo` key
// wraps the document.
//
//	encoding: UTF-8
//	page:
//	  title: Project name
//	  metas:
//	    name:
//	      keywords: foo bar
//	      viewport:
//	        content: width=device-width
//	        extras: {id: vp}
//	    charset:
//	      UTF-8: ""
//	  html:
//	    lang: en
package config
