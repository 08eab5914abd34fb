/*
Package ports defines the driven ports (interfaces) implemented by the adapter
packages.

The toolkit's datasets are embedded and read-only, so the one stateful concern
is caching computed payloads: search rankings, rendered calendars, converted
dates. Cache is the interface the servers program against; pkg/adapters/memory,
pkg/adapters/redis and pkg/adapters/file provide the implementations.

RunCacheContract verifies an implementation against the interface semantics
and is reused by every adapter's test suite.
*/
package ports
