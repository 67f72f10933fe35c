package seed

import "sellquick/internal/model"

// Catalog returns the fixed example catalog inserted into an empty
// directory. Entries carry the seed owner uid and no coordinates.
func Catalog() []model.Listing {
	return []model.Listing{
		{
			Name:              "Elite Fabric Care",
			Category:          "Laundry",
			MicroNiche:        "Silk & Wedding Specialists",
			Description:       "Luxury garment care since 1995. Specializing in high-end couture and delicate fabrics.",
			BudgetRange:       model.BudgetHigh,
			Rating:            4.8,
			Contact:           "ny@elite.com",
			Location:          "Upper East Side",
			VouchCount:        15,
			VerificationLevel: 3,
			HasMemberDiscount: true,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Swift Wash Hub",
			Category:          "Laundry",
			MicroNiche:        "Bulk Industrial Laundry",
			Description:       "Commercial washing for retail clients. Fast turnaround for gyms and hotels.",
			BudgetRange:       model.BudgetLow,
			Rating:            4.2,
			Contact:           "hello@swift.com",
			Location:          "Brooklyn",
			VouchCount:        3,
			VerificationLevel: 1,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Master Tailors",
			Category:          "Tailoring",
			MicroNiche:        "Bespoke Suit Alterations",
			Description:       "Expert repairs and luxury adjustments. Master tailors with 30 years experience.",
			BudgetRange:       model.BudgetMedium,
			Rating:            4.9,
			Contact:           "tailor@bespoke.com",
			Location:          "Manhattan",
			VouchCount:        8,
			VerificationLevel: 2,
			HasMemberDiscount: true,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Legal Eagles",
			Category:          "Legal",
			MicroNiche:        "Startup Incorporation",
			Description:       "Specialized legal services for tech startups and small businesses.",
			BudgetRange:       model.BudgetHigh,
			Rating:            4.7,
			Contact:           "legal@eagles.com",
			Location:          "Silicon Valley",
			VouchCount:        12,
			VerificationLevel: 3,
			HasMemberDiscount: true,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Tech Support Pro",
			Category:          "Tech Support",
			MicroNiche:        "24/7 Remote IT Support",
			Description:       "Round-the-clock IT support for businesses of all sizes.",
			BudgetRange:       model.BudgetMedium,
			Rating:            4.5,
			Contact:           "support@techpro.com",
			Location:          "Remote",
			VouchCount:        5,
			VerificationLevel: 2,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Digital Marketing Gurus",
			Category:          "Marketing",
			MicroNiche:        "Social Media Advertising",
			Description:       "Maximize your ROI with targeted social media campaigns.",
			BudgetRange:       model.BudgetHigh,
			Rating:            4.9,
			Contact:           "hello@dm-gurus.com",
			Location:          "Los Angeles",
			VouchCount:        20,
			VerificationLevel: 3,
			HasMemberDiscount: true,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Portrait Photography Studio",
			Category:          "Photography",
			MicroNiche:        "Corporate Headshots",
			Description:       "Professional headshot photography for corporate teams.",
			BudgetRange:       model.BudgetMedium,
			Rating:            4.6,
			Contact:           "studio@portrait.com",
			Location:          "Chicago",
			VouchCount:        7,
			VerificationLevel: 2,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Green Thumb Landscaping",
			Category:          "Landscaping",
			MicroNiche:        "Xeriscape Design",
			Description:       "Water-wise landscaping for arid climates. Native plants, drip irrigation, sustainable design.",
			BudgetRange:       model.BudgetMedium,
			Rating:            4.7,
			Contact:           "info@greenthumb.com",
			Location:          "Phoenix",
			VouchCount:        9,
			VerificationLevel: 2,
			HasMemberDiscount: true,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Precision HVAC Solutions",
			Category:          "HVAC",
			MicroNiche:        "Commercial Refrigeration",
			Description:       "Installation and maintenance of commercial refrigeration systems for restaurants and grocery stores.",
			BudgetRange:       model.BudgetHigh,
			Rating:            4.8,
			Contact:           "service@precisionhvac.com",
			Location:          "Houston",
			VouchCount:        14,
			VerificationLevel: 3,
			HasMemberDiscount: true,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "CodeCraft Developers",
			Category:          "Software Development",
			MicroNiche:        "FinTech APIs",
			Description:       "Building secure, scalable APIs for financial technology applications.",
			BudgetRange:       model.BudgetHigh,
			Rating:            4.9,
			Contact:           "dev@codecraft.com",
			Location:          "San Francisco",
			VouchCount:        22,
			VerificationLevel: 3,
			HasMemberDiscount: true,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Fresh Bites Catering",
			Category:          "Catering",
			MicroNiche:        "Vegan & Gluten-Free Events",
			Description:       "Gourmet plant-based catering for corporate events and weddings.",
			BudgetRange:       model.BudgetMedium,
			Rating:            4.6,
			Contact:           "events@freshbites.com",
			Location:          "Portland",
			VouchCount:        6,
			VerificationLevel: 2,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "SecureLock Locksmiths",
			Category:          "Security",
			MicroNiche:        "High-Security Commercial Locks",
			Description:       "Installation of biometric and electronic access systems for office buildings.",
			BudgetRange:       model.BudgetHigh,
			Rating:            4.7,
			Contact:           "secure@securelock.com",
			Location:          "Miami",
			VouchCount:        11,
			VerificationLevel: 3,
			HasMemberDiscount: true,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Urban Fit Personal Training",
			Category:          "Fitness",
			MicroNiche:        "Post-Rehabilitation Training",
			Description:       "One-on-one training for clients recovering from injuries or surgeries.",
			BudgetRange:       model.BudgetMedium,
			Rating:            4.8,
			Contact:           "train@urbanfit.com",
			Location:          "Denver",
			VouchCount:        8,
			VerificationLevel: 2,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Bright Minds Tutoring",
			Category:          "Education",
			MicroNiche:        "STEM Test Prep",
			Description:       "Specialized tutoring for advanced placement math, physics, and computer science exams.",
			BudgetRange:       model.BudgetMedium,
			Rating:            4.9,
			Contact:           "tutor@brightminds.com",
			Location:          "Boston",
			VouchCount:        13,
			VerificationLevel: 2,
			HasMemberDiscount: true,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Clean Sweep Janitorial",
			Category:          "Cleaning",
			MicroNiche:        "Medical Facility Sanitization",
			Description:       "Deep cleaning and disinfection for clinics, dental offices, and laboratories.",
			BudgetRange:       model.BudgetLow,
			Rating:            4.4,
			Contact:           "clean@cleansweep.com",
			Location:          "Atlanta",
			VouchCount:        4,
			VerificationLevel: 1,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Audio Visual Pros",
			Category:          "Event Production",
			MicroNiche:        "Large-Scale Conference AV",
			Description:       "Full-service audio-visual production for conferences, trade shows, and corporate meetings.",
			BudgetRange:       model.BudgetHigh,
			Rating:            4.8,
			Contact:           "av@avpros.com",
			Location:          "Las Vegas",
			VouchCount:        17,
			VerificationLevel: 3,
			HasMemberDiscount: true,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Pet Paradise Grooming",
			Category:          "Pet Care",
			MicroNiche:        "Show-Dog Grooming",
			Description:       "Professional grooming for competition dogs, including breed-specific styling.",
			BudgetRange:       model.BudgetMedium,
			Rating:            4.7,
			Contact:           "grooming@petparadise.com",
			Location:          "Orlando",
			VouchCount:        9,
			VerificationLevel: 2,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Solar Energy Solutions",
			Category:          "Renewable Energy",
			MicroNiche:        "Residential Solar + Battery Storage",
			Description:       "Turnkey solar panel installation with integrated battery backup systems.",
			BudgetRange:       model.BudgetHigh,
			Rating:            4.9,
			Contact:           "solar@solarenergy.com",
			Location:          "San Diego",
			VouchCount:        19,
			VerificationLevel: 3,
			HasMemberDiscount: true,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Quick Fix Plumbing",
			Category:          "Plumbing",
			MicroNiche:        "Emergency Leak Repair",
			Description:       "24/7 emergency plumbing service for residential and commercial leaks.",
			BudgetRange:       model.BudgetMedium,
			Rating:            4.5,
			Contact:           "plumbing@quickfix.com",
			Location:          "Dallas",
			VouchCount:        7,
			VerificationLevel: 2,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Global Logistics Partners",
			Category:          "Logistics",
			MicroNiche:        "Cold-Chain Shipping",
			Description:       "Temperature-controlled shipping for pharmaceuticals and perishable goods.",
			BudgetRange:       model.BudgetHigh,
			Rating:            4.8,
			Contact:           "logistics@global.com",
			Location:          "Seattle",
			VouchCount:        15,
			VerificationLevel: 3,
			HasMemberDiscount: true,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Mindful Therapy Collective",
			Category:          "Mental Health",
			MicroNiche:        "Corporate Wellness Programs",
			Description:       "On-site and virtual therapy sessions for employee mental-health initiatives.",
			BudgetRange:       model.BudgetMedium,
			Rating:            4.9,
			Contact:           "therapy@mindful.com",
			Location:          "Austin",
			VouchCount:        12,
			VerificationLevel: 2,
			HasMemberDiscount: true,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Bespoke Interior Design",
			Category:          "Interior Design",
			MicroNiche:        "Luxury Hotel & Resort Design",
			Description:       "Full-service interior design for high-end hospitality projects.",
			BudgetRange:       model.BudgetHigh,
			Rating:            4.9,
			Contact:           "design@bespoke.com",
			Location:          "New York",
			VouchCount:        18,
			VerificationLevel: 3,
			HasMemberDiscount: true,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Mobile Auto Detailing",
			Category:          "Automotive",
			MicroNiche:        "Ceramic Coating Application",
			Description:       "On-site ceramic coating and paint protection for luxury and classic cars.",
			BudgetRange:       model.BudgetMedium,
			Rating:            4.7,
			Contact:           "detail@mobileauto.com",
			Location:          "Los Angeles",
			VouchCount:        10,
			VerificationLevel: 2,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Voiceover Studio",
			Category:          "Media",
			MicroNiche:        "Multilingual Voiceover",
			Description:       "Professional voiceover recording in 10+ languages for commercials, e-learning, and animation.",
			BudgetRange:       model.BudgetMedium,
			Rating:            4.6,
			Contact:           "voice@studio.com",
			Location:          "Remote",
			VouchCount:        6,
			VerificationLevel: 2,
			OwnerUID:          model.SeedOwnerUID,
		},
		{
			Name:              "Cybersecurity Shield",
			Category:          "Cybersecurity",
			MicroNiche:        "Penetration Testing",
			Description:       "Comprehensive security assessments and penetration testing for financial institutions.",
			BudgetRange:       model.BudgetHigh,
			Rating:            4.9,
			Contact:           "security@shield.com",
			Location:          "Washington DC",
			VouchCount:        21,
			VerificationLevel: 3,
			HasMemberDiscount: true,
			OwnerUID:          model.SeedOwnerUID,
		},
	}
}
