// Package entries defines a freewrite entry and the pure pieces of the
// persistence layer: the filename codec that embeds an entry's id and
// creation time into its name, the metadata extractor that derives preview
// text and word counts from content, and the catalog projection that orders
// entries newest first.
//
// Filenames look like
//
//	[3C1E8F52-93B0-4C8B-A3F4-6F1D2B9E7A10]-[2024-03-09-07-05-03].md
//
// The Store interface is the entry persistence capability consumers depend
// on; the filesystem implementation lives in internal/storage/files.
package entries
