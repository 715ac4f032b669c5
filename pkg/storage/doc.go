/*
Package storage persists structured records to disk as JSON or TOML.

# Overview

storage gives any serializable value a uniform save/load surface. The
format is either chosen explicitly or inferred from the target path's
extension, and every failure (filesystem, encode, or decode) is reported
as a single [Error] type callers can classify by [Kind].

# Basic Usage

Any struct the codecs can handle works; no registration is required:

	type User struct {
	    Name  string `json:"name" toml:"name"`
	    Email string `json:"email" toml:"email"`
	}

	user := User{Name: "Alice", Email: "alice@alice.com"}
	if err := storage.SaveByExtension(user, "user.toml", true); err != nil {
	    log.Fatal(err)
	}

	loaded, err := storage.LoadByExtension[User]("user.toml")
	if err != nil {
	    log.Fatal(err)
	}

# Extension Inference

The extension is the final dot segment of the filename and must equal
"json" or "toml" exactly; matching is case-sensitive, so "user.JSON" is
rejected. Inference is pure string work and never touches the filesystem.

# Error Handling

Every operation returns *[Error]. Match on its Kind to branch by cause:

	var serr *storage.Error
	if errors.As(err, &serr) && serr.Kind == storage.KindUnknownExtension {
	    // unsupported path
	}

Wrapped kinds keep the underlying error reachable through errors.Is/As and
render its original message.

# Concurrency

Operations are synchronous and share no state between calls. Concurrent
saves to the same path are last-writer-wins; coordinating access to a
shared path is the caller's responsibility.

# Related Packages

  - codec: the per-format encode/decode implementations
  - snapshot: versioned snapshot stores built on this package
  - config: YAML/JSON configuration loading for the stores
  - observability: logging, tracing, and metrics helpers
*/
package storage
