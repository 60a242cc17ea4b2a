// Code generated by hand. DO NOT EDIT.

package code

var blacklistCache = 4
