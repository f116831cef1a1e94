// Package xmlpart locates and edits elements inside package XML parts
// without re-serialising them.
//
// A part is tokenised once with encoding/xml to record the byte offsets of
// its root element and the root's direct children. Edits are splices into
// the original bytes, so everything an edit does not touch is preserved
// byte for byte, including whitespace, comments and attribute quoting.
//
// Element and attribute names keep their literal prefixes: Name.Space holds
// the prefix as written ("r", "xmlns", ...), not a resolved namespace URI.
package xmlpart
