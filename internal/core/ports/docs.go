// Package ports declares the outbound contracts of the parcel registry:
// repositories, the identifier allocator, the unit of work that binds them
// to one transaction, and the tracking cache.
package ports
