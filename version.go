package storekit

// Version is the library release version. It is embedded in the default
// user agent so API operators can identify client traffic.
const Version = "0.1.0"

// DefaultUserAgent identifies the library on the wire. Override it per
// client with client.WithUserAgent.
const DefaultUserAgent = "storekit/" + Version + " (+https://github.com/storekit-go/storekit)"
