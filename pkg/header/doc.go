// Package header provides the common header of verkey documents.
//
// Documents that leave the process, such as an exported index, start with a
// Kind, an APIVersion and string Metadata so readers can reject files they do
// not understand:
//
//	kind: KeySet
//	apiVersion: verkey.nvidia.com/v1alpha1
//	metadata:
//	  timestamp: "2025-01-15T10:30:00Z"
//	  version: v1.0.0
//
// Embed Header inline and call Init when producing a document, Check when
// reading one:
//
//	type KeySet struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Entries []Entry `json:"entries" yaml:"entries"`
//	}
//
//	ks.Init(header.KindKeySet, version)
//	if err := ks.Check(header.KindKeySet); err != nil { ... }
package header
