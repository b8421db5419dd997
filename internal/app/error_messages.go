// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// DocVault server handlers and the client services.
//
// All Msg* constants are the human-readable messages written into HTTP
// response bodies. The client shows them to the user verbatim, so they are
// in the user's language and each one is matched back to a sentinel error
// on the client side.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "Requête invalide."

	// MsgInvalidCredentials is returned when the email/password pair does not
	// match an account.
	MsgInvalidCredentials = "Email ou mot de passe invalide."

	// MsgInvalidEmail and MsgPasswordTooShort are returned by registration
	// and login validation.
	MsgInvalidEmail     = "Adresse email invalide."
	MsgPasswordTooShort = "Le mot de passe doit contenir au moins 6 caractères."

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the email is already in use.
	MsgEmailAlreadyExists = "Un compte existe déjà pour cet email."

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired,
	// cannot be verified or belongs to a revoked session.
	MsgTokenIsExpiredOrInvalid = "Session expirée, veuillez vous reconnecter."

	// MsgNoTokenProvided is returned when a protected route is called
	// without an Authorization header.
	MsgNoTokenProvided = "Authentification requise."

	// MsgNameRequired is returned when a category or folder name is empty.
	MsgNameRequired = "Le nom est requis."

	// MsgNameTooLong is returned when a name or title exceeds the limit.
	MsgNameTooLong = "Le nom est trop long."

	// MsgNameAlreadyExists is returned when a category or folder name is
	// already used by the same user.
	MsgNameAlreadyExists = "Ce nom existe déjà."

	// MsgTitleRequired is returned when a document title is empty.
	MsgTitleRequired = "Le titre est requis."

	// MsgFileRequired is returned when an upload carries no file part.
	MsgFileRequired = "Fichier requis."

	// MsgFileTooLarge is returned when an upload exceeds the size limit.
	MsgFileTooLarge = "Fichier trop volumineux."

	// MsgFullNameRequired and MsgSignatureRequired are the two mandatory
	// fields of a registre entry.
	MsgFullNameRequired  = "Le nom et prénom sont requis."
	MsgSignatureRequired = "La signature est requise."

	// MsgInvalidSignature is returned when a signature key does not belong
	// to the user or the uploaded file is not an image.
	MsgInvalidSignature = "Signature invalide."

	// MsgNotFound is returned when a category, document, folder or entry
	// does not exist for the user.
	MsgNotFound = "Élément introuvable."

	// MsgInvalidReference is returned when a record points at a parent that
	// does not exist.
	MsgInvalidReference = "Élément parent introuvable."

	// MsgStorageFailed is returned when the object store rejects a file
	// operation.
	MsgStorageFailed = "Erreur du stockage de fichiers."

	// MsgTooManyRequests is returned by the auth rate limiter.
	MsgTooManyRequests = "Trop de tentatives, réessayez plus tard."

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Erreur interne du serveur."

	// MsgRequestTimeout is returned when the handler exceeds the request
	// timeout.
	MsgRequestTimeout = "Le serveur n'a pas répondu à temps."
)
