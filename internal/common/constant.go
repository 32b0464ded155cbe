package common

// AuthorizationHeader is the HTTP header used to carry the bearer
// credential on outbound requests.
const AuthorizationHeader = "Authorization"

// BearerPrefix prefixes the credential inside the Authorization header.
const BearerPrefix = "Bearer "

// CredentialKey is the durable key-value storage key holding the bearer
// credential. Absence of the key means the user is anonymous.
const CredentialKey = "token"
