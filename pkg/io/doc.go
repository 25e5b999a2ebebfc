// Package io reads source photos and writes finished sheets to disk.
//
// # Import
//
// [ReadImage] decodes any format registered with the image package: JPEG,
// PNG, GIF, BMP and TIFF through imaging, plus WebP. EXIF orientation is
// applied so that phone portraits are upright before cropping. [ImportImage]
// is the file-based wrapper and classifies failures:
//
//   - missing file: errors.ErrCodeInputNotFound
//   - unreadable or undecodable file: errors.ErrCodeInputUnreadable
//
// # Export
//
// [ExportFile] writes atomically. The data goes to a uniquely named hidden
// file next to the destination, which is renamed over the destination only
// after a successful write and close. A failed export leaves any previous
// file at the destination untouched and removes the temporary file. All
// failures are reported as errors.ErrCodeOutputWriteFailure.
package io
