// Package s3 implements blobstore.Store backed by Amazon S3.
//
// Reads and writes go through the transfer manager, which handles
// multipart uploads transparently; cache files are small, so the common
// case is a single PUT/GET.
package s3
