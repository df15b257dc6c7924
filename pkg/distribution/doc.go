// Package distribution describes the introspected content of a platform
// distribution: bundles and the components, services, extension points,
// contributions and operations they declare, plus the packages that ship
// them.
//
// The graph, group and stats engines only read a distribution through the
// [Distribution] interface. [Snapshot] is the in-memory implementation;
// [Load] and [LoadFile] decode it from the JSON snapshot document:
//
//	{
//	  "name": "Nuxeo Platform",
//	  "version": "11.2",
//	  "bundles": [{
//	    "id": "org.nuxeo.ecm.core",
//	    "groupId": "org.nuxeo.ecm.core",
//	    "artifactId": "nuxeo-core",
//	    "requirements": ["org.nuxeo.runtime"],
//	    "components": [{
//	      "id": "org.nuxeo.ecm.core.schema.TypeService",
//	      "extensionPoints": [{"id": "org.nuxeo.ecm.core.schema.TypeService--schema"}],
//	      "extensions": [...]
//	    }]
//	  }],
//	  "packages": [{"id": "platform-11.2", "name": "platform", "bundles": ["org.nuxeo.ecm.core"]}]
//	}
//
// # Filters
//
// A [Filter] selects artifacts for an export pass. [PersistFilter] selects by
// bundle, package and Java package names; [ReferenceFilter] selects what a
// previous selection points to. Combine them with [AnyOf].
//
// A snapshot is immutable once built and safe for concurrent readers.
package distribution
