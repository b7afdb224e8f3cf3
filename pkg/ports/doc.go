/*
Package ports defines the driven-side interfaces of the blueprint core.

The core never performs document I/O itself; hosts plug in a Store
implementation (file, memory, redis) that carries serialized blueprint
documents verbatim. Contract tests in this package let every adapter
prove the same observable behavior.
*/
package ports
