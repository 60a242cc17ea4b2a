// Code generated by hand. DO NOT EDIT.

package generated

var blacklistCache = 4 // want "'blacklistCache' detected. Try denylist, blocklist"
