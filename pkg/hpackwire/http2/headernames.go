package http2

// Canonical header name and common value constants, so that callers
// building a HeaderList don't respell ":method" or "accept-encoding"
// throughout application code. Grouped the way the original toolkit's
// headers package does, pseudo-headers first.
const (
	HeaderMethod    = ":method"
	HeaderScheme    = ":scheme"
	HeaderAuthority = ":authority"
	HeaderPath      = ":path"
	HeaderStatus    = ":status"
)

const (
	HeaderAcceptCharset           = "accept-charset"
	HeaderAcceptEncoding          = "accept-encoding"
	HeaderAcceptLanguage          = "accept-language"
	HeaderAcceptRanges            = "accept-ranges"
	HeaderAccept                  = "accept"
	HeaderAccessControlAllowOrigin = "access-control-allow-origin"
	HeaderAge                     = "age"
	HeaderAllow                   = "allow"
	HeaderAuthorization           = "authorization"
	HeaderCacheControl            = "cache-control"
	HeaderContentDisposition      = "content-disposition"
	HeaderContentEncoding         = "content-encoding"
	HeaderContentLanguage         = "content-language"
	HeaderContentLength           = "content-length"
	HeaderContentLocation         = "content-location"
	HeaderContentRange            = "content-range"
	HeaderContentType             = "content-type"
	HeaderCookie                  = "cookie"
	HeaderDate                    = "date"
	HeaderETag                    = "etag"
	HeaderExpect                  = "expect"
	HeaderExpires                 = "expires"
	HeaderFrom                    = "from"
	HeaderHost                    = "host"
	HeaderIfMatch                 = "if-match"
	HeaderIfModifiedSince         = "if-modified-since"
	HeaderIfNoneMatch             = "if-none-match"
	HeaderIfRange                 = "if-range"
	HeaderIfUnmodifiedSince       = "if-unmodified-since"
	HeaderLastModified            = "last-modified"
	HeaderLink                    = "link"
	HeaderLocation                = "location"
	HeaderMaxForwards             = "max-forwards"
	HeaderProxyAuthenticate       = "proxy-authenticate"
	HeaderProxyAuthorization      = "proxy-authorization"
	HeaderRange                   = "range"
	HeaderReferer                 = "referer"
	HeaderRefresh                 = "refresh"
	HeaderRetryAfter              = "retry-after"
	HeaderServer                  = "server"
	HeaderSetCookie               = "set-cookie"
	HeaderStrictTransportSecurity = "strict-transport-security"
	HeaderTransferEncoding        = "transfer-encoding"
	HeaderUserAgent               = "user-agent"
	HeaderVary                    = "vary"
	HeaderVia                     = "via"
	HeaderWwwAuthenticate         = "www-authenticate"
)

const (
	MethodHEAD    = "HEAD"
	MethodGET     = "GET"
	MethodPOST    = "POST"
	MethodPUT     = "PUT"
	MethodDELETE  = "DELETE"
	MethodOPTIONS = "OPTIONS"
)

const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)
