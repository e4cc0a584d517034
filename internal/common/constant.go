package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// InvalidCredentialsMessage is returned verbatim to clients whose sign-in
// attempt fails, whether the email is unknown or the password is wrong.
const InvalidCredentialsMessage = "Invalid login credentials"
