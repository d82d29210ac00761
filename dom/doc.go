/*

Package dom provides a Document Model Implementation intended for use as
in-memory storage of live data objects.

The Node tree layout and APIs are designed to (roughly) follow those of the DOM
living standard found at https://dom.spec.whatwg.org.

Structural, character-data and attribute mutations synthesize DOM Level 2
mutation events, delivered to registered listeners through the standard
capture/at-target/bubble phases.

*/
package dom
