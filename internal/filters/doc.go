// Package filters undoes the compression applied to stored command streams.
//
// Command streams dumped by a tokenizer are plain JSON but compress well,
// and are often kept gzip- or zlib-compressed. Decompress sniffs the first
// bytes of a stream and wraps it with the matching decoder:
//
//	r, filter, err := filters.Decompress(f)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
// Uncompressed input is passed through unchanged with filter None.
package filters
